package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"bookings_sqlfix/src/common"
)

// Preview sizes, kept small so the output stays readable in a terminal.
const (
	previewRows    = 5
	previewSamples = 10
)

func main() {
	_ = godotenv.Load()

	defaultPath := os.Getenv("BOOKING_EXPORT_FILE")
	if defaultPath == "" {
		defaultPath = "Import Exclusive Colosseum Arena Floor and Ancient Rome guided tour dal 1 agosto 2.xlsx"
	}
	filePath := flag.String("file", defaultPath, "Path to the booking export .xlsx file to inspect")
	flag.Parse()

	if _, err := os.Stat(*filePath); err != nil {
		log.Fatalf("cannot access file %q: %v", *filePath, err)
	}

	table, err := common.LoadExcel(*filePath)
	if err != nil {
		log.Fatalf("failed to load Excel file: %v", err)
	}

	fmt.Println("Column names:")
	fmt.Printf("  %s\n", strings.Join(table.Columns, ", "))

	fmt.Printf("\nFirst %d rows:\n", previewRows)
	limit := previewRows
	if limit > len(table.Rows) {
		limit = len(table.Rows)
	}
	for r := 0; r < limit; r++ {
		fmt.Printf("  %4d |", r+1)
		for c := range table.Columns {
			fmt.Printf(" %s", table.Cell(r, c))
			if c < len(table.Columns)-1 {
				fmt.Print(" |")
			}
		}
		fmt.Println()
	}
	fmt.Printf("\nTotal rows: %d\n", len(table.Rows))

	for _, idCol := range []string{"activity_booking_id", "booking_id"} {
		if !table.HasColumn(idCol) {
			continue
		}
		values, err := table.Column(idCol)
		if err != nil {
			log.Fatalf("failed to read column %q: %v", idCol, err)
		}
		if len(values) > previewSamples {
			values = values[:previewSamples]
		}
		fmt.Printf("\nFound %s column\n", idCol)
		fmt.Printf("Sample IDs: %s\n", strings.Join(values, ", "))
	}

	var dateColumns []string
	for _, col := range table.Columns {
		lower := strings.ToLower(col)
		if strings.Contains(lower, "date") || strings.Contains(lower, "created") {
			dateColumns = append(dateColumns, col)
		}
	}
	fmt.Printf("\nDate columns found: %s\n", strings.Join(dateColumns, ", "))
	for _, col := range dateColumns {
		values, err := table.Column(col)
		if err != nil {
			log.Fatalf("failed to read column %q: %v", col, err)
		}
		if len(values) > previewRows {
			values = values[:previewRows]
		}
		fmt.Printf("\n%s sample values:\n", col)
		for _, v := range values {
			fmt.Printf("  %s\n", v)
		}
	}
}
