package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/domain/ledger"
	"github.com/pennywise-app/pennywise/pkg/config"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as canonical CSV",
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

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := ledger.WriteCSV(w, txs); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			if out != "" {
				cmd.Printf("Exported %d transactions to %s\n", len(txs), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")

	return cmd
}
