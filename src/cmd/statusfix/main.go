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

	defaultPath := os.Getenv("BOOKING_STATUS_CSV")
	if defaultPath == "" {
		defaultPath = "activity_bookings_rows IMPORTED NEW UPDATE.csv"
	}
	filePath := flag.String("file", defaultPath, "Path to the Latin-1, semicolon-separated booking CSV")
	sep := flag.String("sep", ";", "Field separator used by the CSV")
	flag.Parse()

	if *sep == "" {
		log.Fatal("separator must not be empty")
	}

	table, err := common.LoadLatin1CSV(*filePath, rune((*sep)[0]))
	if err != nil {
		log.Fatalf("failed to load CSV file: %v", err)
	}

	if err := generateStatusFix(table, os.Stdout); err != nil {
		log.Fatalf("failed to generate SQL: %v", err)
	}
}
