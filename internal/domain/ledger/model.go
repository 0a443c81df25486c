// Package ledger holds the persisted transaction model and the storage
// collaborator consumed by the import pipeline. The pipeline only ever reads a
// snapshot of existing transactions; writing accepted candidates back is the
// caller's job.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is the direction of a transaction. Amounts are stored as
// magnitudes; direction lives here.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is a persisted financial transaction.
type Transaction struct {
	ID          uuid.UUID
	Date        string // canonical YYYY-MM-DD
	Description string
	Category    string
	Type        TransactionType
	Amount      float64 // non-negative magnitude
	CreatedAt   time.Time
}
