package common

import (
	"fmt"
	"io"
)

// CollectDateUpdates turns a booking export into the (clean key,
// timestamp) pairs the date-fix SQL needs: channel prefixes stripped
// from booking_id, duplicates on the (key, date) pair dropped keeping
// the first occurrence, input order preserved.
func CollectDateUpdates(table *Table) ([]DateUpdate, error) {
	idCol, err := table.ColumnIndex("booking_id")
	if err != nil {
		return nil, err
	}
	dateCol, err := table.ColumnIndex("creation_date")
	if err != nil {
		return nil, err
	}

	seen := make(map[DateUpdate]bool)
	var updates []DateUpdate
	for r := range table.Rows {
		key := StripChannelPrefix(table.Cell(r, idCol))
		ts, err := FormatTimestamp(table.Cell(r, dateCol))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad creation_date for booking %q: %w", r+2, key, err)
		}
		u := DateUpdate{Key: key, Timestamp: ts}
		if seen[u] {
			continue
		}
		seen[u] = true
		updates = append(updates, u)
	}
	return updates, nil
}

// GenerateDateFix writes the full date-fix output: batched CASE
// updates over activity_bookings followed by the aggregate
// verification query. Shared by the Excel and Google Sheets commands.
func GenerateDateFix(table *Table, w io.Writer) error {
	updates, err := CollectDateUpdates(table)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Total unique bookings to update: %d\n", len(updates))
	fmt.Fprintln(w, "\n-- SQL to update booking creation dates from the export file")
	fmt.Fprintln(w, "-- This will update the anomalous bookings imported in bulk")
	fmt.Fprintf(w, "\n-- Updating %d bookings\n", len(updates))

	for i, batch := range Chunk(updates, DateBatchSize) {
		fmt.Fprintf(w, "\n-- Batch %d\n", i+1)
		fmt.Fprint(w, DateCaseUpdate(batch))
	}

	keys := make([]string, len(updates))
	for i, u := range updates {
		keys[i] = u.Key
	}
	fmt.Fprintln(w, "\n\n-- Verification query to check the updates")
	fmt.Fprint(w, DateVerification(keys))
	return nil
}
