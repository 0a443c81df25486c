// Package review builds candidate transactions from decoded rows and groups
// them for bulk categorization. Candidates carry a confidence score and an
// optional duplicate flag; groups are transient review artifacts, rebuilt
// from scratch on every import run and never persisted.
package review

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise/internal/domain/import/decoder"
	"github.com/pennywise-app/pennywise/internal/domain/import/dedupe"
	"github.com/pennywise-app/pennywise/internal/domain/import/normalizer"
	"github.com/pennywise-app/pennywise/internal/domain/import/sniffer"
	"github.com/pennywise-app/pennywise/internal/domain/ledger"
)

// duplicateSuffix distinguishes the duplicate bucket of a description group
// in review listings.
const duplicateSuffix = " (possible duplicates)"

// Candidate is one parsed statement row awaiting user confirmation. Amount is
// always a non-negative magnitude; direction lives in Type.
type Candidate struct {
	ID              uuid.UUID
	Date            string // canonical YYYY-MM-DD, or "" when unparseable
	Description     string
	Amount          float64
	Category        string
	Type            ledger.TransactionType
	Confidence      float64
	Duplicate       bool
	DuplicateReason string
	Row             decoder.Row // original row, kept for traceability
}

// Group clusters candidates sharing a normalized description key. Duplicate
// and non-duplicate candidates with the same key land in separate groups so
// that "probably already imported" is reviewed apart from "new".
type Group struct {
	Description       string
	Transactions      []Candidate
	SuggestedCategory string
	SuggestedType     ledger.TransactionType
	Include           bool
}

// groupKey is the tagged grouping key: normalized description plus the
// duplicate bucket flag.
type groupKey struct {
	norm      string
	duplicate bool
}

// BuildCandidates resolves each row through the mapping into a candidate.
// Rows are skipped when the date or description field is empty, or when the
// active amount strategy yields no usable value. A row whose date fails to
// PARSE is still emitted (empty canonical date) — the reviewer corrects it —
// and a garbage amount is preserved as 0 for visibility. Any unexpected
// per-row fault is logged and skips only that row.
func BuildCandidates(table decoder.Table, mapping sniffer.Mapping, detector *dedupe.Detector, logger *slog.Logger) []Candidate {
	candidates := make([]Candidate, 0, len(table.Rows))
	for i, row := range table.Rows {
		candidate, ok := buildCandidate(row, mapping, detector, logger, i)
		if ok {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

func buildCandidate(row decoder.Row, mapping sniffer.Mapping, detector *dedupe.Detector, logger *slog.Logger, index int) (candidate Candidate, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Warn("skipping row after processing fault", "row", index, "panic", r)
			}
			ok = false
		}
	}()

	rawDate := row[mapping.Date]
	rawDesc := row[mapping.Description]
	if rawDate == "" || rawDesc == "" {
		return Candidate{}, false
	}

	var (
		signed    float64
		rawAmount string
		isDebit   *bool
	)
	if mapping.DoubleEntry() {
		rawDebit := row[mapping.Debit]
		rawCredit := row[mapping.Credit]
		debit := normalizer.ParseAmount(rawDebit)
		credit := normalizer.ParseAmount(rawCredit)
		if debit == 0 && credit == 0 {
			return Candidate{}, false
		}
		debitSide := debit != 0
		isDebit = &debitSide
		if debitSide {
			signed = debit
			rawAmount = rawDebit
		} else {
			signed = credit
			rawAmount = rawCredit
		}
	} else {
		rawAmount = row[mapping.Amount]
		if rawAmount == "" {
			return Candidate{}, false
		}
		signed = normalizer.ParseAmount(rawAmount)
		if signed < 0 {
			// A signed single-amount column is the row's polarity hint.
			debitSide := true
			isDebit = &debitSide
		}
	}

	date := normalizer.ParseDate(rawDate)
	amount := signed
	if amount < 0 {
		amount = -amount
	}

	candidate = Candidate{
		ID:          uuid.New(),
		Date:        date,
		Description: rawDesc,
		Amount:      amount,
		Category:    row[mapping.Category],
		Type:        normalizer.DetermineType(rawDesc, row[mapping.Type], isDebit),
		Confidence:  confidence(rawDate, rawAmount, rawDesc),
		Row:         row,
	}

	if detector != nil {
		candidate.Duplicate, candidate.DuplicateReason = detector.Check(date, amount, rawDesc)
	}

	return candidate, true
}

// confidence scores how well the raw fields matched expected shapes. It is a
// reviewer-attention heuristic, not a probability.
func confidence(rawDate, rawAmount, description string) float64 {
	score := 0.0
	switch {
	case normalizer.MatchesDatePattern(rawDate):
		score += 0.4
	case rawDate != "":
		score += 0.2
	}
	switch {
	case normalizer.MatchesAmountPattern(rawAmount):
		score += 0.4
	case rawAmount != "":
		score += 0.2
	}
	switch {
	case len(description) > 5:
		score += 0.2
	case description != "":
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// GroupByDescription buckets candidates by normalized description key. Only
// keys with more than one member become groups, sorted by descending member
// count; singletons are omitted (see Ungrouped). The suggested type is the
// majority among members, ties resolved by tally insertion order.
func GroupByDescription(candidates []Candidate) []Group {
	var order []groupKey
	members := make(map[groupKey][]Candidate)

	for _, c := range candidates {
		key := groupKey{norm: normalizer.NormalizeKey(c.Description), duplicate: c.Duplicate}
		if _, seen := members[key]; !seen {
			order = append(order, key)
		}
		members[key] = append(members[key], c)
	}

	var groups []Group
	for _, key := range order {
		group := members[key]
		if len(group) < 2 {
			continue
		}

		description := group[0].Description
		if key.duplicate {
			description += duplicateSuffix
		}

		allDuplicates := true
		for _, c := range group {
			if !c.Duplicate {
				allDuplicates = false
				break
			}
		}

		groups = append(groups, Group{
			Description:   description,
			Transactions:  group,
			SuggestedType: majorityType(group),
			Include:       !allDuplicates,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Transactions) > len(groups[j].Transactions)
	})

	return groups
}

// Ungrouped returns the candidates that did not land in any group, in their
// original order.
func Ungrouped(candidates []Candidate, groups []Group) []Candidate {
	grouped := make(map[uuid.UUID]bool)
	for _, g := range groups {
		for _, c := range g.Transactions {
			grouped[c.ID] = true
		}
	}

	var rest []Candidate
	for _, c := range candidates {
		if !grouped[c.ID] {
			rest = append(rest, c)
		}
	}
	return rest
}

// majorityType votes over member types with an ordered tally, so a tie goes
// to the type that reached the winning count first.
func majorityType(candidates []Candidate) ledger.TransactionType {
	type tally struct {
		t ledger.TransactionType
		n int
	}
	var tallies []tally

	for _, c := range candidates {
		found := false
		for i := range tallies {
			if tallies[i].t == c.Type {
				tallies[i].n++
				found = true
				break
			}
		}
		if !found {
			tallies = append(tallies, tally{t: c.Type, n: 1})
		}
	}

	winner := tallies[0]
	for _, t := range tallies[1:] {
		if t.n > winner.n {
			winner = t
		}
	}
	return winner.t
}
