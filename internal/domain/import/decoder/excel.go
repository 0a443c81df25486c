package decoder

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// preferredSheets are tried first when picking the worksheet to decode.
var preferredSheets = []string{
	"transactions", "movimentos", "extrato",
	"statement", "data", "sheet1",
}

// DecodeWorkbook reads an XLSX export into the same Table shape the text
// decoder produces, so the rest of the pipeline is format-agnostic. The first
// non-empty row of the chosen sheet is the header; rows shorter than the
// header are padded with empty values (spreadsheet libraries omit trailing
// blank cells), longer rows are dropped like any other field-count mismatch.
func DecodeWorkbook(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := findStatementSheet(f)
	if sheet == "" {
		return Table{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	var headers []string
	table := Table{}
	for _, cells := range rows {
		if isBlankRow(cells) {
			continue
		}
		if headers == nil {
			headers = make([]string, len(cells))
			for i, c := range cells {
				headers[i] = strings.TrimSpace(c)
			}
			table.Headers = headers
			continue
		}
		if len(cells) > len(headers) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			value := ""
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			row[h] = value
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func findStatementSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	for _, preferred := range preferredSheets {
		for _, sheet := range sheets {
			if strings.EqualFold(sheet, preferred) {
				return sheet
			}
		}
	}
	return sheets[0]
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
