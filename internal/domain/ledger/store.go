package ledger

import "context"

// Store defines the persistence interface for transactions.
type Store interface {
	// ListTransactions returns a snapshot of all persisted transactions.
	// The import pipeline calls this exactly once per run.
	ListTransactions(ctx context.Context) ([]Transaction, error)

	// SaveTransactions persists accepted transactions.
	SaveTransactions(ctx context.Context, txs []Transaction) error

	// Close releases the underlying resources.
	Close() error
}
