package categorize

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule maps a description keyword to a category. Keywords are matched
// case-insensitively as substrings; earlier rules win on overlap.
type Rule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// RulesFile is the on-disk rules document.
type RulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads keyword rules from a YAML file. A missing path falls back
// to the built-in defaults rather than failing the import run.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRules(), nil
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for _, r := range file.Rules {
		if r.Keyword == "" || r.Category == "" {
			continue
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// DefaultRules is the built-in keyword set used when no rules file exists.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "salary", Category: "Income"},
		{Keyword: "payroll", Category: "Income"},
		{Keyword: "grocery", Category: "Groceries"},
		{Keyword: "supermarket", Category: "Groceries"},
		{Keyword: "restaurant", Category: "Dining"},
		{Keyword: "coffee", Category: "Dining"},
		{Keyword: "starbucks", Category: "Dining"},
		{Keyword: "uber", Category: "Transport"},
		{Keyword: "lyft", Category: "Transport"},
		{Keyword: "fuel", Category: "Transport"},
		{Keyword: "gas station", Category: "Transport"},
		{Keyword: "netflix", Category: "Subscriptions"},
		{Keyword: "spotify", Category: "Subscriptions"},
		{Keyword: "rent", Category: "Housing"},
		{Keyword: "mortgage", Category: "Housing"},
		{Keyword: "electric", Category: "Utilities"},
		{Keyword: "water", Category: "Utilities"},
		{Keyword: "internet", Category: "Utilities"},
		{Keyword: "pharmacy", Category: "Health"},
		{Keyword: "gym", Category: "Health"},
	}
}
