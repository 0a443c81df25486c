package commands

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/domain/categorize"
	"github.com/pennywise-app/pennywise/internal/domain/import/review"
	importsvc "github.com/pennywise-app/pennywise/internal/domain/import/service"
	"github.com/pennywise-app/pennywise/internal/domain/ledger"
	"github.com/pennywise-app/pennywise/pkg/config"
)

func newImportCommand() *cobra.Command {
	var (
		yes       bool
		rulesPath string
	)

	cmd := &cobra.Command{
		Use:   "import <statement-file>",
		Short: "Import a bank statement (CSV, delimited text, or XLSX)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if rulesPath == "" {
				rulesPath = cfg.Ledger.RulesPath
			}
			rules := categorize.DefaultRules()
			if rulesPath != "" {
				rules, err = categorize.LoadRules(rulesPath)
				if err != nil {
					return err
				}
			}

			svc := importsvc.New(store, logger).WithCategoryRules(rules)

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			var result *importsvc.Result
			if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
				result, err = svc.RunWorkbook(cmd.Context(), bytes.NewReader(data))
			} else {
				result, err = svc.Run(cmd.Context(), string(data))
			}
			if err != nil {
				return err
			}

			printResult(cmd, result)

			if !yes {
				if len(result.Candidates) > 0 {
					cmd.Println("\nRe-run with --yes to save the included transactions.")
				}
				return nil
			}

			saved, err := persist(cmd, store, result)
			if err != nil {
				return err
			}
			cmd.Printf("\nSaved %d transactions.\n", saved)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "save included transactions without prompting")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "category rules file (YAML)")

	return cmd
}

func printResult(cmd *cobra.Command, result *importsvc.Result) {
	cmd.Printf("Rows: %d  Candidates: %d  Skipped: %d  Possible duplicates: %d\n",
		result.RowsTotal, len(result.Candidates), result.RowsSkipped, result.Duplicates)

	for _, group := range result.Groups {
		marker := " "
		if !group.Include {
			marker = "-"
		}
		cmd.Printf("\n[%s] %s (%d transactions, %s", marker, group.Description, len(group.Transactions), group.SuggestedType)
		if group.SuggestedCategory != "" {
			cmd.Printf(", %s", group.SuggestedCategory)
		}
		cmd.Println(")")
		for _, c := range group.Transactions {
			printCandidate(cmd, c)
		}
	}

	if len(result.Ungrouped) > 0 {
		cmd.Println("\nUngrouped:")
		for _, c := range result.Ungrouped {
			printCandidate(cmd, c)
		}
	}
}

func printCandidate(cmd *cobra.Command, c review.Candidate) {
	date := c.Date
	if date == "" {
		date = "????-??-??"
	}
	cmd.Printf("    %s  %10.2f  %s  (confidence %.1f)", date, c.Amount, c.Description, c.Confidence)
	if c.Duplicate {
		cmd.Printf("  [duplicate: %s]", c.DuplicateReason)
	}
	cmd.Println()
}

// persist saves every included, non-duplicate candidate. Group members take
// the group's suggested category when their own is empty.
func persist(cmd *cobra.Command, store ledger.Store, result *importsvc.Result) (int, error) {
	var txs []ledger.Transaction

	add := func(c review.Candidate, fallbackCategory string) {
		if c.Duplicate {
			return
		}
		category := c.Category
		if category == "" {
			category = fallbackCategory
		}
		txs = append(txs, ledger.Transaction{
			ID:          c.ID,
			Date:        c.Date,
			Description: c.Description,
			Category:    category,
			Type:        c.Type,
			Amount:      c.Amount,
		})
	}

	for _, group := range result.Groups {
		if !group.Include {
			continue
		}
		for _, c := range group.Transactions {
			add(c, group.SuggestedCategory)
		}
	}
	for _, c := range result.Ungrouped {
		add(c, "")
	}

	if len(txs) == 0 {
		return 0, nil
	}
	if err := store.SaveTransactions(cmd.Context(), txs); err != nil {
		return 0, fmt.Errorf("failed to save transactions: %w", err)
	}
	return len(txs), nil
}
