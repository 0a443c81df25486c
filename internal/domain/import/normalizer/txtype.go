package normalizer

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/pennywise-app/pennywise/internal/domain/ledger"
)

// Hint vocabularies for explicit type columns. The app's own export uses the
// exact strings "income"/"expense"; bank type columns get substring matching.
var (
	incomeHints  = []string{"credit", "deposit", "income"}
	expenseHints = []string{"debit", "withdrawal", "expense"}
)

// incomeKeywords flag income-looking descriptions when no explicit hint or
// debit/credit polarity is available.
var incomeKeywords = []string{
	"salary", "payroll", "bonus", "refund", "dividend", "freelance",
	"transfer in", "interest earned", "cashback", "reimbursement", "paycheck",
}

var incomeMatcher = ahocorasick.NewStringMatcher(incomeKeywords)

// DetermineType infers income vs expense for a row. Priority: explicit type
// hint, then description keywords, then debit/credit polarity (isDebit may be
// nil when no polarity is known), then the expense default — the majority
// case for bank exports.
func DetermineType(description, typeHint string, isDebit *bool) ledger.TransactionType {
	hint := strings.ToLower(strings.TrimSpace(typeHint))
	if hint != "" {
		switch hint {
		case "income":
			return ledger.TypeIncome
		case "expense":
			return ledger.TypeExpense
		}
		if containsAny(hint, incomeHints) {
			return ledger.TypeIncome
		}
		if containsAny(hint, expenseHints) {
			return ledger.TypeExpense
		}
	}

	if len(incomeMatcher.Match([]byte(strings.ToLower(description)))) > 0 {
		return ledger.TypeIncome
	}

	if isDebit != nil {
		if *isDebit {
			return ledger.TypeExpense
		}
		return ledger.TypeIncome
	}

	return ledger.TypeExpense
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
