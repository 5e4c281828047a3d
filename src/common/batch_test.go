package common

import (
	"strconv"
	"testing"
)

func TestChunkCoversInputInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 7, 50, 149, 150, 151} {
		items := make([]string, n)
		for i := range items {
			items[i] = strconv.Itoa(i)
		}
		for size := 1; size <= 5; size++ {
			var flat []string
			for _, c := range Chunk(items, size) {
				if len(c) == 0 || len(c) > size {
					t.Fatalf("n=%d size=%d: chunk of length %d", n, size, len(c))
				}
				flat = append(flat, c...)
			}
			if len(flat) != n {
				t.Fatalf("n=%d size=%d: concatenation has %d items", n, size, len(flat))
			}
			for i, v := range flat {
				if v != strconv.Itoa(i) {
					t.Fatalf("n=%d size=%d: item %d is %q", n, size, i, v)
				}
			}
		}
	}
}

func TestChunkSizes(t *testing.T) {
	tests := []struct {
		n, size int
		want    []int
	}{
		{n: 150, size: 100, want: []int{100, 50}},
		{n: 100, size: 100, want: []int{100}},
		{n: 101, size: 50, want: []int{50, 50, 1}},
		{n: 3, size: 10, want: []int{3}},
	}
	for _, tt := range tests {
		chunks := Chunk(make([]int, tt.n), tt.size)
		if len(chunks) != len(tt.want) {
			t.Fatalf("n=%d size=%d: got %d chunks, want %d", tt.n, tt.size, len(chunks), len(tt.want))
		}
		for i, c := range chunks {
			if len(c) != tt.want[i] {
				t.Errorf("n=%d size=%d: chunk %d has %d items, want %d", tt.n, tt.size, i, len(c), tt.want[i])
			}
		}
	}
}

func TestChunkEmptyAndClampedSize(t *testing.T) {
	if got := Chunk([]int(nil), 10); got != nil {
		t.Errorf("empty input: got %v, want nil", got)
	}
	chunks := Chunk([]int{1, 2, 3}, 0)
	if len(chunks) != 1 || len(chunks[0]) != 3 {
		t.Errorf("size 0: got %v, want one chunk of 3", chunks)
	}
}
