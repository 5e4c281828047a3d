package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "export.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExcel(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"booking_id", "creation_date"},
		[]interface{}{"ENRO-1", "2024-08-01 10:30:00"},
		[]interface{}{"TTG-2", "2024-08-02 11:00:00"},
	)
	table, err := LoadExcel(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Columns) != 2 || table.Columns[0] != "booking_id" {
		t.Fatalf("unexpected columns: %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if got := table.Cell(1, 0); got != "TTG-2" {
		t.Errorf("Cell(1, 0) = %q, want TTG-2", got)
	}
}

func TestLoadExcelMissingFile(t *testing.T) {
	if _, err := LoadExcel(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadLatin1CSV(t *testing.T) {
	// 0xE9 is é in ISO 8859-1.
	raw := []byte("activity_booking_id;Booking Status\n101;confirm\xe9\n102;cancelled\n")
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadLatin1CSV(path, ';')
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if got := table.Cell(0, 1); got != "confirmé" {
		t.Errorf("Latin-1 cell decoded to %q, want confirmé", got)
	}
}

func TestColumnIndexFailsFast(t *testing.T) {
	table := FromValues([][]string{{"a", "b"}, {"1", "2"}})
	if _, err := table.ColumnIndex("b"); err != nil {
		t.Fatalf("existing column: %v", err)
	}
	_, err := table.ColumnIndex("creation_date")
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	msg := err.Error()
	if !strings.Contains(msg, "creation_date") || !strings.Contains(msg, "a, b") {
		t.Errorf("error should name the missing column and the existing ones: %v", err)
	}
}

func TestFindColumn(t *testing.T) {
	table := FromValues([][]string{{"activity_booking_id", "Booking Status", "amount"}})
	col, ok := table.FindColumn("status")
	if !ok || col != "Booking Status" {
		t.Errorf("FindColumn(status) = %q, %v", col, ok)
	}
	if _, ok := table.FindColumn("currency"); ok {
		t.Error("FindColumn(currency) should not match")
	}
}

func TestCellPadsShortRows(t *testing.T) {
	table := FromValues([][]string{{"a", "b", "c"}, {"only"}})
	if got := table.Cell(0, 2); got != "" {
		t.Errorf("short row cell = %q, want empty", got)
	}
	values, err := table.Column("c")
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 1 || values[0] != "" {
		t.Errorf("Column(c) = %v, want one empty value", values)
	}
}

func TestFromValuesEmpty(t *testing.T) {
	table := FromValues(nil)
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Errorf("empty input produced %v", table)
	}
}
