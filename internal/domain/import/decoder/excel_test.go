package decoder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestDecodeWorkbook(t *testing.T) {
	r := buildWorkbook(t, "transactions", [][]interface{}{
		{"Date", "Description", "Amount"},
		{"2024-01-15", "Coffee", "4.50"},
		{"2024-01-16", "Groceries", "52.30"},
	})

	table, err := DecodeWorkbook(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Coffee", table.Rows[0]["Description"])
	assert.Equal(t, "52.30", table.Rows[1]["Amount"])
}

func TestDecodeWorkbook_ShortRowsPadded(t *testing.T) {
	r := buildWorkbook(t, "statement", [][]interface{}{
		{"Date", "Description", "Amount"},
		{"2024-01-15", "Coffee"},
	})

	table, err := DecodeWorkbook(r)
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0]["Amount"], "missing trailing cells pad to empty")
}

func TestDecodeWorkbook_BadData(t *testing.T) {
	_, err := DecodeWorkbook(bytes.NewReader([]byte("not a workbook")))
	require.Error(t, err)
}
