package common

import "testing"

func TestStripChannelPrefix(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"ENRO-12345", "12345"},
		{"TTG-9", "9"},
		{"PRO-100200", "100200"},
		{"VIA-7", "7"},
		{"HED-42", "42"},
		{"VET-8", "8"},
		{"12345", "12345"},
		{"GYG-555", "GYG-555"},
		{"", ""},
		{"ENRO-", ""},
	}
	for _, tt := range tests {
		if got := StripChannelPrefix(tt.id); got != tt.want {
			t.Errorf("StripChannelPrefix(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestStripChannelPrefixIdempotent(t *testing.T) {
	for _, id := range []string{"ENRO-123", "VET-0", "plain", "GYG-5"} {
		once := StripChannelPrefix(id)
		if twice := StripChannelPrefix(once); twice != once {
			t.Errorf("StripChannelPrefix not idempotent for %q: %q then %q", id, once, twice)
		}
	}
}
