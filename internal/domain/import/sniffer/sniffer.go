// Package sniffer infers which column holds which semantic role in a decoded
// statement: header-name matching first, content-pattern sampling as a
// fallback, with a fast path for the app's own canonical export format.
package sniffer

import (
	"strings"

	"github.com/pennywise-app/pennywise/internal/domain/import/decoder"
	"github.com/pennywise-app/pennywise/internal/domain/import/normalizer"
)

// Mapping assigns semantic roles to column names. Unassigned roles are the
// empty string. Exactly one amount strategy is ever active: either Amount, or
// the Debit/Credit pair — never both.
type Mapping struct {
	Date        string
	Description string
	Amount      string
	Debit       string
	Credit      string
	Category    string
	Type        string
	CreatedAt   string

	// Canonical marks a file in the app's own export format; category and
	// type come through verbatim with no heuristic inference.
	Canonical bool
}

// DoubleEntry reports whether the mapping uses a debit/credit column pair.
func (m Mapping) DoubleEntry() bool {
	return m.Debit != "" && m.Credit != ""
}

// Usable reports whether the mapping can drive an import: a date, a
// description, and an amount strategy.
func (m Mapping) Usable() bool {
	return m.Date != "" && m.Description != "" && (m.Amount != "" || m.DoubleEntry())
}

// canonicalHeaders is the app's own export header set. All six must be
// present (exact case, any column order, extra columns allowed) for the fast
// path to trigger.
var canonicalHeaders = []string{"Date", "Description", "Category", "Type", "Amount", "Created At"}

// Header-name vocabularies, matched by case-insensitive substring
// containment. First header in table order wins; no scoring.
var (
	dateVocab        = []string{"date", "transaction date", "posted date", "value date", "data mov", "data", "fecha", "datum"}
	descriptionVocab = []string{"description", "descri", "memo", "payee", "merchant", "narrative", "details", "nome", "name"}
	amountVocab      = []string{"amount", "valor", "importe", "montant", "montante", "value"}
	debitVocab       = []string{"debit", "débito", "debito", "withdrawal", "outgoing", "cargo"}
	creditVocab      = []string{"credit", "crédito", "credito", "deposit", "incoming", "abono"}
	categoryVocab    = []string{"categ"}
	typeVocab        = []string{"type", "tipo"}
)

const (
	contentSampleRows     = 5
	descriptionSampleRows = 10
)

// Infer guesses the column mapping for a decoded table. Roles that cannot be
// resolved stay empty; the caller decides whether the result is usable.
func Infer(table decoder.Table) Mapping {
	if len(table.Rows) == 0 {
		return Mapping{}
	}

	if m, ok := matchCanonical(table.Headers); ok {
		return m
	}

	m := Mapping{}
	assigned := map[string]bool{}
	claim := func(role *string, header string) {
		*role = header
		assigned[header] = true
	}

	// Date: name pass, then date-shaped content sampling.
	if h := matchName(table.Headers, assigned, dateVocab); h != "" {
		claim(&m.Date, h)
	} else if h := matchContent(table, assigned, normalizer.MatchesDatePattern); h != "" {
		claim(&m.Date, h)
	}

	// Debit/credit pair. Both must be found for the pair to be usable; a
	// lone half does not block single-amount detection.
	debit := matchName(table.Headers, assigned, debitVocab)
	credit := matchName(table.Headers, assigned, creditVocab)
	if debit != "" && credit != "" && debit != credit {
		claim(&m.Debit, debit)
		claim(&m.Credit, credit)
	}

	// Single amount column, mutually exclusive with the pair. The content
	// sampling pass is skipped entirely once a pair is in place.
	if !m.DoubleEntry() {
		if h := matchName(table.Headers, assigned, amountVocab); h != "" {
			claim(&m.Amount, h)
		} else if h := matchContent(table, assigned, normalizer.MatchesAmountPattern); h != "" {
			claim(&m.Amount, h)
		}
	}

	// Description: name pass, then longest-average-value fallback — free
	// text tends to be the longest field.
	if h := matchName(table.Headers, assigned, descriptionVocab); h != "" {
		claim(&m.Description, h)
	} else if h := longestColumn(table, assigned); h != "" {
		claim(&m.Description, h)
	}

	if h := matchName(table.Headers, assigned, categoryVocab); h != "" {
		claim(&m.Category, h)
	}
	if h := matchName(table.Headers, assigned, typeVocab); h != "" {
		claim(&m.Type, h)
	}

	return m
}

// matchCanonical checks for the app's own export header set.
func matchCanonical(headers []string) (Mapping, bool) {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, required := range canonicalHeaders {
		if !present[required] {
			return Mapping{}, false
		}
	}
	return Mapping{
		Date:        "Date",
		Description: "Description",
		Category:    "Category",
		Type:        "Type",
		Amount:      "Amount",
		CreatedAt:   "Created At",
		Canonical:   true,
	}, true
}

func matchName(headers []string, assigned map[string]bool, vocab []string) string {
	for _, header := range headers {
		if assigned[header] {
			continue
		}
		lower := strings.ToLower(header)
		for _, word := range vocab {
			if strings.Contains(lower, word) {
				return header
			}
		}
	}
	return ""
}

// matchContent samples up to contentSampleRows non-empty values per
// unassigned column. A column qualifies when at least min(3, sampleSize)
// samples match the shape predicate; first qualifying column wins.
func matchContent(table decoder.Table, assigned map[string]bool, matches func(string) bool) string {
	for _, header := range table.Headers {
		if assigned[header] {
			continue
		}
		var samples []string
		for _, row := range table.Rows {
			if v := row[header]; v != "" {
				samples = append(samples, v)
			}
			if len(samples) == contentSampleRows {
				break
			}
		}
		if len(samples) == 0 {
			continue
		}
		required := 3
		if len(samples) < required {
			required = len(samples)
		}
		hits := 0
		for _, s := range samples {
			if matches(s) {
				hits++
			}
		}
		if hits >= required {
			return header
		}
	}
	return ""
}

// longestColumn returns the unassigned column with the greatest average value
// length across the first descriptionSampleRows rows.
func longestColumn(table decoder.Table, assigned map[string]bool) string {
	best := ""
	bestAvg := 0.0
	for _, header := range table.Headers {
		if assigned[header] {
			continue
		}
		total, count := 0, 0
		for i, row := range table.Rows {
			if i == descriptionSampleRows {
				break
			}
			total += len(row[header])
			count++
		}
		if count == 0 {
			continue
		}
		avg := float64(total) / float64(count)
		if avg > bestAvg {
			best = header
			bestAvg = avg
		}
	}
	return best
}
