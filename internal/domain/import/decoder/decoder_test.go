package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_CommaDelimited(t *testing.T) {
	raw := "Date,Description,Amount\n2024-01-15,Coffee,4.50\n2024-01-16,Groceries,52.30\n"

	table := Decode(raw)

	require.Equal(t, []string{"Date", "Description", "Amount"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2024-01-15", table.Rows[0]["Date"])
	assert.Equal(t, "Coffee", table.Rows[0]["Description"])
	assert.Equal(t, "52.30", table.Rows[1]["Amount"])
}

func TestDecode_DelimiterDetection(t *testing.T) {
	tests := []struct {
		name   string
		header string
		rows   []string
		date   string
	}{
		{
			name:   "semicolon",
			header: "Data Mov;Descrição;Valor",
			rows:   []string{"15-01-2024;Compra Continente;-32,10"},
			date:   "15-01-2024",
		},
		{
			name:   "tab",
			header: "Date\tDescription\tAmount",
			rows:   []string{"2024-01-15\tCoffee\t4.50"},
			date:   "2024-01-15",
		},
		{
			name:   "pipe",
			header: "Date|Description|Amount",
			rows:   []string{"2024-01-15|Coffee|4.50"},
			date:   "2024-01-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.header + "\n" + tt.rows[0] + "\n"
			table := Decode(raw)
			require.Len(t, table.Headers, 3)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, tt.date, table.Rows[0][table.Headers[0]])
		})
	}
}

// Semicolon outranks comma on equal counts: a semicolon-delimited header
// whose free-text column names carry commas must not flip to comma.
func TestDecode_SemicolonBeatsCommaOnTie(t *testing.T) {
	raw := "Date;Description, notes;Amount, EUR\nignored\n"

	table := Decode(raw)

	assert.Equal(t, []string{"Date", "Description, notes", "Amount, EUR"}, table.Headers)
}

func TestDecode_DefaultsToComma(t *testing.T) {
	raw := "OnlyHeader\nvalue\n"

	table := Decode(raw)

	require.Equal(t, []string{"OnlyHeader"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "value", table.Rows[0]["OnlyHeader"])
}

func TestDecode_QuotedFields(t *testing.T) {
	raw := `Date,Description,Amount
2024-01-15,"Dinner, with friends",45.67
`

	table := Decode(raw)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Dinner, with friends", table.Rows[0]["Description"],
		"delimiter inside quotes must not split the field")
}

func TestDecode_EscapedQuote(t *testing.T) {
	raw := "Date,Description,Amount\n2024-01-15,prefix \\\" suffix,1.00\n"

	table := Decode(raw)

	require.Len(t, table.Rows, 1)
	assert.Contains(t, table.Rows[0]["Description"], "suffix")
}

func TestDecode_MismatchedRowsDropped(t *testing.T) {
	raw := "Date,Description,Amount\n2024-01-15,Coffee,4.50\nbroken,row\n2024-01-16,Tea,3.10,extra\n2024-01-17,Juice,2.00\n"

	table := Decode(raw)

	require.Len(t, table.Rows, 2, "short and long rows are dropped")
	assert.Equal(t, "Coffee", table.Rows[0]["Description"])
	assert.Equal(t, "Juice", table.Rows[1]["Description"])
}

func TestDecode_BlankLinesAndCRLF(t *testing.T) {
	raw := "Date,Description,Amount\r\n\r\n2024-01-15,Coffee,4.50\r\n\r\n"

	table := Decode(raw)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "4.50", table.Rows[0]["Amount"])
}

func TestDecode_BOMStripped(t *testing.T) {
	raw := "\ufeffDate,Description,Amount\n2024-01-15,Coffee,4.50\n"

	table := Decode(raw)

	assert.Equal(t, "Date", table.Headers[0], "UTF-8 BOM must not stick to the first header")
}

func TestDecode_Empty(t *testing.T) {
	assert.True(t, Decode("").IsEmpty())
	assert.True(t, Decode("just a header\n").IsEmpty(), "header without data rows is empty")
	assert.Empty(t, Decode("").Headers)
}
