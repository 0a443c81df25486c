package commands

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/domain/ledger"
	"github.com/pennywise-app/pennywise/pkg/config"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the ledger: totals by type and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			txs, err := store.ListTransactions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			// Decimal accumulation keeps the totals exact over many rows.
			income := decimal.Zero
			expense := decimal.Zero
			byCategory := map[string]decimal.Decimal{}
			for _, tx := range txs {
				amount := decimal.NewFromFloat(tx.Amount)
				if tx.Type == ledger.TypeIncome {
					income = income.Add(amount)
				} else {
					expense = expense.Add(amount)
				}
				category := tx.Category
				if category == "" {
					category = "(uncategorized)"
				}
				byCategory[category] = byCategory[category].Add(amount)
			}

			cmd.Printf("Transactions: %d\n", len(txs))
			cmd.Printf("Income:  %s\n", income.StringFixed(2))
			cmd.Printf("Expense: %s\n", expense.StringFixed(2))
			cmd.Printf("Net:     %s\n", income.Sub(expense).StringFixed(2))

			if len(byCategory) == 0 {
				return nil
			}
			categories := make([]string, 0, len(byCategory))
			for c := range byCategory {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			cmd.Println("\nBy category:")
			for _, c := range categories {
				cmd.Printf("  %-24s %s\n", c, byCategory[c].StringFixed(2))
			}
			return nil
		},
	}

	return cmd
}
