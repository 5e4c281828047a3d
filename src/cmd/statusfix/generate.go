package main

import (
	"fmt"
	"io"
	"strings"

	"bookings_sqlfix/src/common"
)

// statusGroup is every activity_booking_id that should end up with the
// same status value, in row order.
type statusGroup struct {
	Status string
	IDs    []string
}

// groupByStatus buckets the export's rows by their status value,
// keeping groups in first-seen order. The status column is located by
// substring because the exports do not name it consistently.
func groupByStatus(table *common.Table) ([]statusGroup, error) {
	statusCol, ok := table.FindColumn("status")
	if !ok {
		return nil, fmt.Errorf("no status-like column found (columns: %s)", strings.Join(table.Columns, ", "))
	}
	statusIdx, err := table.ColumnIndex(statusCol)
	if err != nil {
		return nil, err
	}
	idIdx, err := table.ColumnIndex("activity_booking_id")
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []statusGroup
	for r := range table.Rows {
		status := table.Cell(r, statusIdx)
		id := table.Cell(r, idIdx)
		i, ok := index[status]
		if !ok {
			i = len(groups)
			index[status] = i
			groups = append(groups, statusGroup{Status: status})
		}
		groups[i].IDs = append(groups[i].IDs, id)
	}
	return groups, nil
}

// generateStatusFix writes the full script output: a summary of the
// file, batched IN-list updates per status value, and the grouped
// verification query over every ID.
func generateStatusFix(table *common.Table, w io.Writer) error {
	groups, err := groupByStatus(table)
	if err != nil {
		return err
	}
	statusCol, _ := table.FindColumn("status")

	fmt.Fprintln(w, "File info:")
	fmt.Fprintf(w, "Total rows: %d\n", len(table.Rows))
	fmt.Fprintf(w, "Columns: %s\n", strings.Join(table.Columns, ", "))
	fmt.Fprintf(w, "\nFound status column: %s\n", statusCol)
	fmt.Fprintln(w, "Status values:")
	for _, g := range groups {
		fmt.Fprintf(w, "  %-20s %d\n", g.Status, len(g.IDs))
	}

	var allIDs []string
	unique := make(map[string]bool)
	for _, g := range groups {
		for _, id := range g.IDs {
			allIDs = append(allIDs, id)
			unique[id] = true
		}
	}
	fmt.Fprintf(w, "\nUnique activity_booking_ids: %d\n", len(unique))

	fmt.Fprintln(w, "\n\n-- SQL Updates for status changes")
	fmt.Fprintln(w, "-- Grouping by status for efficiency")
	for _, g := range groups {
		fmt.Fprintf(w, "\n-- Update %d bookings to %s\n", len(g.IDs), g.Status)
		for _, batch := range common.Chunk(g.IDs, common.StatusBatchSize) {
			fmt.Fprint(w, common.StatusUpdate(g.Status, batch))
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "\n-- Verification query")
	fmt.Fprint(w, common.StatusVerification(allIDs))
	return nil
}
