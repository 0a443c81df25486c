// Package service orchestrates a statement import run: decode, infer the
// column mapping, build review candidates against the persisted ledger, and
// group them for bulk confirmation.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pennywise-app/pennywise/internal/domain/categorize"
	"github.com/pennywise-app/pennywise/internal/domain/import/decoder"
	"github.com/pennywise-app/pennywise/internal/domain/import/dedupe"
	"github.com/pennywise-app/pennywise/internal/domain/import/review"
	"github.com/pennywise-app/pennywise/internal/domain/import/sniffer"
	"github.com/pennywise-app/pennywise/internal/domain/ledger"
)

// Store is the slice of ledger persistence the import pipeline needs: a
// read-only snapshot for duplicate detection and category history.
type Store interface {
	ListTransactions(ctx context.Context) ([]ledger.Transaction, error)
}

// Service runs statement imports.
type Service struct {
	store  Store
	rules  []categorize.Rule
	logger *slog.Logger
}

// New creates an import service.
func New(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, rules: categorize.DefaultRules(), logger: logger}
}

// WithCategoryRules replaces the built-in keyword rules.
func (s *Service) WithCategoryRules(rules []categorize.Rule) *Service {
	s.rules = rules
	return s
}

// Analysis is the structural read of a statement before any candidate is
// built: the decoded table plus the inferred mapping.
type Analysis struct {
	Table   decoder.Table
	Mapping sniffer.Mapping
}

// Result is a full import run ready for review.
type Result struct {
	Candidates []review.Candidate
	Groups     []review.Group
	Ungrouped  []review.Candidate

	RowsTotal   int
	RowsSkipped int
	Duplicates  int
}

// Analyze decodes the statement and infers its column mapping without
// touching the store. Useful for previewing how a file will be read.
func (s *Service) Analyze(raw string) Analysis {
	table := decoder.Decode(raw)
	return Analysis{Table: table, Mapping: sniffer.Infer(table)}
}

// Run imports raw delimited statement text.
func (s *Service) Run(ctx context.Context, raw string) (*Result, error) {
	return s.runTable(ctx, decoder.Decode(raw))
}

// RunWorkbook imports an XLSX statement through the same pipeline.
func (s *Service) RunWorkbook(ctx context.Context, r io.Reader) (*Result, error) {
	table, err := decoder.DecodeWorkbook(r)
	if err != nil {
		return nil, err
	}
	return s.runTable(ctx, table)
}

func (s *Service) runTable(ctx context.Context, table decoder.Table) (*Result, error) {
	if table.IsEmpty() {
		return &Result{}, nil
	}

	mapping := sniffer.Infer(table)
	if !mapping.Usable() {
		return nil, fmt.Errorf("could not identify date, description, and amount columns (headers: %v)", table.Headers)
	}

	// One snapshot per run; the detector and the category engine share it.
	existing, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing transactions: %w", err)
	}

	detector := dedupe.NewDetector(existing)
	candidates := review.BuildCandidates(table, mapping, detector, s.logger)

	groups := review.GroupByDescription(candidates)
	engine := categorize.NewEngine(s.rules, existing)
	for i := range groups {
		if groups[i].SuggestedCategory == "" {
			groups[i].SuggestedCategory = engine.Suggest(groups[i].Transactions[0].Description)
		}
	}
	for i := range candidates {
		if candidates[i].Category == "" {
			candidates[i].Category = engine.Suggest(candidates[i].Description)
		}
	}

	duplicates := 0
	for _, c := range candidates {
		if c.Duplicate {
			duplicates++
		}
	}

	result := &Result{
		Candidates:  candidates,
		Groups:      groups,
		Ungrouped:   review.Ungrouped(candidates, groups),
		RowsTotal:   len(table.Rows),
		RowsSkipped: len(table.Rows) - len(candidates),
		Duplicates:  duplicates,
	}

	s.logger.Info("import run complete",
		"rows", result.RowsTotal,
		"candidates", len(result.Candidates),
		"skipped", result.RowsSkipped,
		"groups", len(result.Groups),
		"duplicates", result.Duplicates,
	)

	return result, nil
}
