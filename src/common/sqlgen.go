package common

import (
	"fmt"
	"strings"
)

// BookingsTable is the destination table every generated statement
// targets.
const BookingsTable = "activity_bookings"

// Default batch sizes keeping individual statements small enough to
// paste into a database client.
const (
	DateBatchSize   = 50
	StatusBatchSize = 100
)

// QuoteSQL renders s as a SQL string literal, doubling embedded single
// quotes so a quote in the source data cannot break the statement.
func QuoteSQL(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuotedList renders keys as a comma-separated list of string literals
// for an IN (...) clause.
func QuotedList(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = QuoteSQL(k)
	}
	return strings.Join(quoted, ", ")
}

// NumericList renders ids as a comma-separated list for an IN (...)
// clause over a numeric column. The values are passed through as-is.
func NumericList(ids []string) string {
	return strings.Join(ids, ", ")
}

// DateUpdate is one booking whose creation timestamp needs correcting:
// the prefix-stripped booking key and the replacement timestamp,
// already formatted as "2006-01-02 15:04:05".
type DateUpdate struct {
	Key       string
	Timestamp string
}

// DateCaseUpdate renders one UPDATE for a batch of creation-date
// fixes. The CASE maps each booking key to its timestamp and falls
// back to the existing created_at, so re-running the statement (or a
// stray key) leaves rows untouched.
func DateCaseUpdate(batch []DateUpdate) string {
	var b strings.Builder
	b.WriteString("UPDATE " + BookingsTable + "\n")
	b.WriteString("SET created_at = CASE booking_id::text\n")
	for _, u := range batch {
		fmt.Fprintf(&b, "    WHEN %s THEN %s::timestamp\n", QuoteSQL(u.Key), QuoteSQL(u.Timestamp))
	}
	b.WriteString("    ELSE created_at\n")
	b.WriteString("END\n")
	keys := make([]string, len(batch))
	for i, u := range batch {
		keys[i] = u.Key
	}
	fmt.Fprintf(&b, "WHERE booking_id::text IN (%s);\n", QuotedList(keys))
	return b.String()
}

// DateVerification renders the read-only aggregate query used to
// confirm a date fix by hand: affected-row count plus the min and max
// created_at over the full key set.
func DateVerification(keys []string) string {
	var b strings.Builder
	b.WriteString("SELECT COUNT(*) as updated_count, MIN(created_at) as min_date, MAX(created_at) as max_date\n")
	b.WriteString("FROM " + BookingsTable + "\n")
	fmt.Fprintf(&b, "WHERE booking_id::text IN (%s);\n", QuotedList(keys))
	return b.String()
}

// StatusUpdate renders one UPDATE setting a batch of bookings to the
// given status. IDs go in unquoted; activity_booking_id is numeric.
func StatusUpdate(status string, ids []string) string {
	var b strings.Builder
	b.WriteString("UPDATE " + BookingsTable + "\n")
	fmt.Fprintf(&b, "SET status = %s\n", QuoteSQL(status))
	fmt.Fprintf(&b, "WHERE activity_booking_id IN (%s);\n", NumericList(ids))
	return b.String()
}

// StatusVerification renders the grouped-count query used to confirm
// status fixes by hand.
func StatusVerification(ids []string) string {
	var b strings.Builder
	b.WriteString("SELECT status, COUNT(*) as count\n")
	b.WriteString("FROM " + BookingsTable + "\n")
	fmt.Fprintf(&b, "WHERE activity_booking_id IN (%s)\n", NumericList(ids))
	b.WriteString("GROUP BY status;\n")
	return b.String()
}
