package common

import "strings"

// ChannelPrefixes are the sales-channel codes prepended to booking IDs
// by the import pipeline. Stripping one recovers the numeric key that
// activity_bookings.booking_id holds.
var ChannelPrefixes = []string{"ENRO-", "TTG-", "PRO-", "VIA-", "HED-", "VET-"}

// StripChannelPrefix removes a leading sales-channel code from a
// booking ID. Each prefix is tried in turn; a prefix that does not
// match is a no-op, and an ID with no matching prefix comes back
// unchanged. No validation of the remainder.
func StripChannelPrefix(id string) string {
	for _, prefix := range ChannelPrefixes {
		id = strings.TrimPrefix(id, prefix)
	}
	return id
}
