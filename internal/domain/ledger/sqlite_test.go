package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "ledger", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	id := uuid.New()
	err := store.SaveTransactions(ctx, []Transaction{
		{ID: id, Date: "2024-01-16", Description: "Groceries", Category: "Groceries", Type: TypeExpense, Amount: 52.30, CreatedAt: created},
		{ID: uuid.New(), Date: "2024-01-15", Description: "Salary", Category: "Income", Type: TypeIncome, Amount: 2500, CreatedAt: created},
	})
	require.NoError(t, err)

	txs, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "2024-01-15", txs[0].Date, "listing is ordered by date")
	assert.Equal(t, "Salary", txs[0].Description)
	assert.Equal(t, TypeIncome, txs[0].Type)
	assert.Equal(t, id, txs[1].ID)
	assert.InDelta(t, 52.30, txs[1].Amount, 1e-9)
	assert.True(t, created.Equal(txs[1].CreatedAt))
}

func TestSQLiteStore_DefaultsOnSave(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.SaveTransactions(ctx, []Transaction{
		{Date: "2024-01-15", Description: "Coffee", Type: TypeExpense, Amount: 4.50},
	})
	require.NoError(t, err)

	txs, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.NotEqual(t, uuid.Nil, txs[0].ID, "a missing id is generated")
	assert.False(t, txs[0].CreatedAt.IsZero(), "a missing created-at defaults to now")
}

func TestSQLiteStore_EmptySave(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveTransactions(context.Background(), nil))

	txs, err := store.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestSQLiteStore_BulkInsert(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	gofakeit.Seed(42)

	txs := make([]Transaction, 0, 200)
	for i := 0; i < 200; i++ {
		txType := TypeExpense
		if gofakeit.Bool() {
			txType = TypeIncome
		}
		txs = append(txs, Transaction{
			ID:          uuid.New(),
			Date:        gofakeit.DateRange(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			Description: gofakeit.Company(),
			Category:    gofakeit.RandomString([]string{"Dining", "Groceries", "Transport", ""}),
			Type:        txType,
			Amount:      gofakeit.Price(1, 5000),
		})
	}
	require.NoError(t, store.SaveTransactions(ctx, txs))

	got, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 200)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Date, got[i].Date)
	}
}
