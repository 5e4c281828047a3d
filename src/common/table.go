package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Table holds a tabular export in memory: a header row of column names
// followed by data rows. Rows may be shorter than the header (trailing
// empty cells are dropped by both Excel and CSV exports); use Cell for
// bounds-safe access.
type Table struct {
	Columns []string
	Rows    [][]string
}

// LoadExcel reads the first sheet of an .xlsx/.xlsm workbook. The first
// row is treated as the header.
func LoadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in %q", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheets[0], err)
	}
	return FromValues(rows), nil
}

// LoadLatin1CSV reads a delimited text file in ISO 8859-1 (the encoding
// the booking exports come in), decoding it to UTF-8 on the fly. The
// first record is treated as the header. Records may have a variable
// number of fields.
func LoadLatin1CSV(path string, sep rune) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(transform.NewReader(file, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = sep
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file %q: %w", path, err)
	}
	return FromValues(records), nil
}

// FromValues builds a Table from raw cell values, e.g. a Sheets API
// values range. The first row is the header; a nil or empty input
// yields an empty table.
func FromValues(rows [][]string) *Table {
	t := &Table{}
	if len(rows) == 0 {
		return t
	}
	t.Columns = rows[0]
	t.Rows = rows[1:]
	return t
}

// ColumnIndex returns the index of an exactly-named column. A missing
// column is an error naming the columns that do exist, so every script
// fails fast with the same message shape.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, col := range t.Columns {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found (columns: %s)", name, strings.Join(t.Columns, ", "))
}

// HasColumn reports whether an exactly-named column exists.
func (t *Table) HasColumn(name string) bool {
	_, err := t.ColumnIndex(name)
	return err == nil
}

// FindColumn returns the first column whose name contains substr,
// case-insensitively. Used where the export's column naming is not
// fixed (status columns, date columns).
func (t *Table) FindColumn(substr string) (string, bool) {
	needle := strings.ToLower(substr)
	for _, col := range t.Columns {
		if strings.Contains(strings.ToLower(col), needle) {
			return col, true
		}
	}
	return "", false
}

// Cell returns the value at (row, col), or "" when the row is shorter
// than the header.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Column returns every data-row value of an exactly-named column, in
// row order, padding short rows with "".
func (t *Table) Column(name string) ([]string, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Cell(i, idx)
	}
	return values, nil
}
