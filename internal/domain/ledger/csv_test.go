package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	txs := []Transaction{
		{Date: "2024-01-15", Description: "Dinner, with friends", Category: "Dining", Type: TypeExpense, Amount: 45.67, CreatedAt: created},
		{Date: "2024-01-16", Description: "ACME Salary", Category: "Income", Type: TypeIncome, Amount: 2500, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Category,Type,Amount,Created At", lines[0],
		"the header set is the canonical import contract")
	assert.Contains(t, lines[1], `"Dinner, with friends"`)
	assert.Contains(t, lines[1], "45.67")
	assert.Contains(t, lines[2], "2500.00", "amounts render with two fraction digits")
}

func TestCSVRoundTrip(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	original := []Transaction{
		{Date: "2024-01-15", Description: "Coffee", Category: "Dining", Type: TypeExpense, Amount: 4.50, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, original))

	decoded, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	got := decoded[0]
	assert.Equal(t, original[0].Date, got.Date)
	assert.Equal(t, original[0].Description, got.Description)
	assert.Equal(t, original[0].Category, got.Category)
	assert.Equal(t, original[0].Type, got.Type)
	assert.InDelta(t, original[0].Amount, got.Amount, 1e-9)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestReadCSV_BadAmount(t *testing.T) {
	raw := "Date,Description,Category,Type,Amount,Created At\n2024-01-15,Coffee,Dining,expense,oops,2024-01-15T10:30:00Z\n"

	_, err := ReadCSV(strings.NewReader(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestReadCSV_BadCreatedAt(t *testing.T) {
	raw := "Date,Description,Category,Type,Amount,Created At\n2024-01-15,Coffee,Dining,expense,4.50,whenever\n"

	txs, err := ReadCSV(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].CreatedAt.IsZero(), "a bad timestamp degrades to the zero value")
}
