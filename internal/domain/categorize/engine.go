// Package categorize suggests a category for transaction descriptions using
// keyword rules and the user's own categorization history. Keyword matching
// runs through an Aho-Corasick state machine so a large rules file still
// costs a single pass per description; history lookups fall back to fuzzy
// matching to absorb merchant-name variations.
package categorize

import (
	"sort"
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pennywise-app/pennywise/internal/domain/import/normalizer"
	"github.com/pennywise-app/pennywise/internal/domain/ledger"
)

// fuzzyDistanceMax is the largest Levenshtein distance at which a history key
// still counts as "the same merchant".
const fuzzyDistanceMax = 3

// Engine suggests categories. Safe for concurrent use after construction.
type Engine struct {
	mu      sync.RWMutex
	matcher *ahocorasick.Matcher
	rules   []Rule

	// history maps a normalized description key to its most frequent
	// category among already-categorized transactions.
	history     map[string]string
	historyKeys []string
}

// NewEngine builds an engine from keyword rules and the current ledger
// snapshot.
func NewEngine(rules []Rule, existing []ledger.Transaction) *Engine {
	e := &Engine{}
	e.Build(rules, existing)
	return e
}

// Build reconstructs the matcher and history. Call again when rules or the
// ledger change.
func (e *Engine) Build(rules []Rule, existing []ledger.Transaction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rules = rules
	e.matcher = nil
	if len(rules) > 0 {
		keywords := make([]string, len(rules))
		for i, r := range rules {
			keywords[i] = strings.ToLower(r.Keyword)
		}
		e.matcher = ahocorasick.NewStringMatcher(keywords)
	}

	e.history, e.historyKeys = buildHistory(existing)
}

// Suggest returns a category for the description, or "" when nothing
// applies. Keyword rules win over history; history exact match wins over
// fuzzy.
func (e *Engine) Suggest(description string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	lower := strings.ToLower(description)
	if e.matcher != nil {
		if hits := e.matcher.Match([]byte(lower)); len(hits) > 0 {
			best := hits[0]
			for _, h := range hits[1:] {
				if h < best {
					best = h
				}
			}
			return e.rules[best].Category
		}
	}

	key := normalizer.NormalizeKey(description)
	if key == "" {
		return ""
	}
	if category, ok := e.history[key]; ok {
		return category
	}

	// Fuzzy history fallback for near-miss merchant keys.
	bestKey := ""
	bestDistance := fuzzyDistanceMax + 1
	for _, historyKey := range e.historyKeys {
		d := fuzzy.LevenshteinDistance(key, historyKey)
		if d < bestDistance {
			bestKey = historyKey
			bestDistance = d
		}
	}
	if bestKey != "" {
		return e.history[bestKey]
	}

	return ""
}

// buildHistory tallies categories per normalized description and keeps the
// most frequent one, ties resolved by first occurrence in the snapshot.
func buildHistory(existing []ledger.Transaction) (map[string]string, []string) {
	type tally struct {
		category string
		n        int
	}
	tallies := make(map[string][]tally)
	var keys []string

	for _, tx := range existing {
		if tx.Category == "" {
			continue
		}
		key := normalizer.NormalizeKey(tx.Description)
		if key == "" {
			continue
		}
		counts, seen := tallies[key]
		if !seen {
			keys = append(keys, key)
		}
		found := false
		for i := range counts {
			if counts[i].category == tx.Category {
				counts[i].n++
				found = true
				break
			}
		}
		if !found {
			counts = append(counts, tally{category: tx.Category, n: 1})
		}
		tallies[key] = counts
	}

	history := make(map[string]string, len(tallies))
	for key, counts := range tallies {
		winner := counts[0]
		for _, t := range counts[1:] {
			if t.n > winner.n {
				winner = t
			}
		}
		history[key] = winner.category
	}

	sort.Strings(keys)
	return history, keys
}
