// Package dedupe flags candidate transactions that likely already exist in
// the ledger, using date proximity, exact-ish amount match, and fuzzy
// description similarity. It never errors: when either side's date fails to
// parse the candidate is reported as not-a-duplicate, erring toward re-import
// over data loss.
package dedupe

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pennywise-app/pennywise/internal/domain/ledger"
)

// Matching tolerances. Fixed constants, not per-call knobs.
const (
	dateToleranceDays   = 3
	amountEpsilon       = 0.01
	similarityThreshold = 0.8
)

// Detector checks candidates against a snapshot of persisted transactions.
// The snapshot is taken once per import run; the detector only reads it, so
// it is safe to share across rows.
type Detector struct {
	existing []ledger.Transaction
}

// NewDetector creates a detector over the given snapshot.
func NewDetector(existing []ledger.Transaction) *Detector {
	return &Detector{existing: existing}
}

// Check reports whether the candidate duplicates an existing transaction,
// with a human-readable reason on a hit. The first matching record wins; no
// global best-match search.
func (d *Detector) Check(date string, amount float64, description string) (bool, string) {
	candidateDay, err := parseLocalDate(date)
	if err != nil {
		return false, ""
	}

	for _, tx := range d.existing {
		existingDay, err := parseLocalDate(tx.Date)
		if err != nil {
			continue
		}
		if absDays(candidateDay, existingDay) > dateToleranceDays {
			continue
		}
		if math.Abs(amount-tx.Amount) >= amountEpsilon {
			continue
		}
		similarity := Similarity(strings.ToLower(description), strings.ToLower(tx.Description))
		if similarity > similarityThreshold {
			reason := fmt.Sprintf("matches %q on %s for the same amount", tx.Description, tx.Date)
			return true, reason
		}
	}

	return false, ""
}

// Similarity is normalized edit distance: 1 - levenshtein(a,b)/max(len(a),
// len(b)). Two empty strings are identical (1.0).
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Levenshtein computes edit distance with unit insert/delete/substitute
// costs over a full dynamic-programming matrix. Descriptions are tens of
// characters, so the O(n·m) matrix is cheap and stays easy to inspect.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// parseLocalDate reads a canonical date as a timezone-naive calendar day.
func parseLocalDate(date string) (time.Time, error) {
	return time.Parse("2006-01-02", date)
}

func absDays(a, b time.Time) int {
	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
