package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"bookings_sqlfix/src/common"
)

func main() {
	_ = godotenv.Load()

	defaultPath := os.Getenv("BOOKING_EXPORT_FILE")
	if defaultPath == "" {
		defaultPath = "Import Exclusive Colosseum Arena Floor and Ancient Rome guided tour dal 1 agosto 2.xlsx"
	}
	filePath := flag.String("file", defaultPath, "Path to the booking export .xlsx file")
	flag.Parse()

	table, err := common.LoadExcel(*filePath)
	if err != nil {
		log.Fatalf("failed to load Excel file: %v", err)
	}

	if err := common.GenerateDateFix(table, os.Stdout); err != nil {
		log.Fatalf("failed to generate SQL: %v", err)
	}
}
