// Package commands wires the pennywise CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/domain/ledger"
	"github.com/pennywise-app/pennywise/pkg/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pennywise",
		Short: "Bank statement import and ledger tooling",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newStatsCommand())

	return rootCmd
}

// newLogger builds the CLI logger on the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := charmlog.InfoLevel
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = charmlog.DebugLevel
	case "warn":
		level = charmlog.WarnLevel
	case "error":
		level = charmlog.ErrorLevel
	}

	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "pennywise",
	})
	return slog.New(handler)
}

// openStore opens the configured ledger database.
func openStore(cfg *config.Config) (*ledger.SQLiteStore, error) {
	store, err := ledger.OpenSQLite(cfg.Ledger.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger at %s: %w", cfg.Ledger.DBPath, err)
	}
	return store, nil
}
