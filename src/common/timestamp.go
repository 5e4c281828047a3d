package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// SQLTimestampFormat is how timestamps appear inside generated SQL.
const SQLTimestampFormat = "2006-01-02 15:04:05"

// The layouts booking exports actually contain, tried in order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"1/2/06 15:04",
	"1/2/06",
}

// Excel's day-zero: serial 1 is 1900-01-01, with the off-by-one from
// the historical leap-year bug folded in.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseTimestamp parses a creation-date cell as exported by Excel,
// Sheets, or CSV. Accepts the common textual layouts plus raw Excel
// serial day numbers (e.g. "45505.4375").
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp value")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		days := math.Floor(serial)
		frac := serial - days
		t := excelEpoch.AddDate(0, 0, int(days))
		return t.Add(time.Duration(math.Round(frac * 24 * float64(time.Hour)))), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp value %q", value)
}

// FormatTimestamp parses a creation-date cell and re-renders it in the
// format the generated SQL embeds.
func FormatTimestamp(value string) (string, error) {
	t, err := ParseTimestamp(value)
	if err != nil {
		return "", err
	}
	return t.Format(SQLTimestampFormat), nil
}
