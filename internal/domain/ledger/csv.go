package ledger

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exportRow is the canonical self-export layout. The header set
// (Date, Description, Category, Type, Amount, Created At) is a contract: the
// schema inferrer fast-paths files that carry exactly these six names.
type exportRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
	Type        string `csv:"Type"`
	Amount      string `csv:"Amount"`
	CreatedAt   string `csv:"Created At"`
}

// WriteCSV writes transactions in the canonical export format. Amounts are
// rendered with exactly two fraction digits.
func WriteCSV(w io.Writer, txs []Transaction) error {
	rows := make([]exportRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, exportRow{
			Date:        tx.Date,
			Description: tx.Description,
			Category:    tx.Category,
			Type:        string(tx.Type),
			Amount:      decimal.NewFromFloat(tx.Amount).StringFixed(2),
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		})
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ReadCSV reads transactions from the canonical export format. It tolerates
// more or less amount precision than the exporter produces.
func ReadCSV(r io.Reader) ([]Transaction, error) {
	var rows []exportRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	txs := make([]Transaction, 0, len(rows))
	for i, row := range rows {
		amount, err := strconv.ParseFloat(row.Amount, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount %q: %w", i+2, row.Amount, err)
		}
		createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
		if err != nil {
			createdAt = time.Time{}
		}
		txs = append(txs, Transaction{
			ID:          uuid.New(),
			Date:        row.Date,
			Description: row.Description,
			Category:    row.Category,
			Type:        TransactionType(row.Type),
			Amount:      amount,
			CreatedAt:   createdAt,
		})
	}

	return txs, nil
}
