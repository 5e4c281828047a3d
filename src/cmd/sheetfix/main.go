package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"bookings_sqlfix/src/common"
)

// fetchSheetValues reads the given range of a spreadsheet as strings.
// The Sheets API returns cells as interface{} values; everything the
// pipeline needs survives a plain string rendering.
func fetchSheetValues(ctx context.Context, srv *sheets.Service, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := srv.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %q: %w", readRange, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprintf("%v", cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

func main() {
	_ = godotenv.Load()

	credsDefault := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credsDefault == "" {
		credsDefault = "api.json"
	}
	spreadsheetID := flag.String("spreadsheet", os.Getenv("SHEETFIX_SPREADSHEET_ID"), "Spreadsheet ID holding the booking export")
	readRange := flag.String("range", "Sheet1", "Sheet name or A1 range to read")
	credsFile := flag.String("creds", credsDefault, "Path to the service account credentials JSON")
	flag.Parse()

	if *spreadsheetID == "" {
		log.Fatal("spreadsheet ID is not set (use -spreadsheet or SHEETFIX_SPREADSHEET_ID)")
	}

	ctx := context.Background()
	b, err := os.ReadFile(*credsFile)
	if err != nil {
		log.Fatalf("Unable to read service account file: %v", err)
	}
	config, err := google.JWTConfigFromJSON(b, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		log.Fatalf("Unable to parse service account file: %v", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		log.Fatalf("Unable to retrieve Sheets client: %v", err)
	}

	values, err := fetchSheetValues(ctx, srv, *spreadsheetID, *readRange)
	if err != nil {
		log.Fatalf("failed to fetch sheet values: %v", err)
	}

	if err := common.GenerateDateFix(common.FromValues(values), os.Stdout); err != nil {
		log.Fatalf("failed to generate SQL: %v", err)
	}
}
