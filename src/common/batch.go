package common

// Chunk splits items into contiguous slices of at most size elements,
// covering the input exactly once in order. The last chunk may be
// shorter. Chunks share the input's backing array. A size below 1 is
// clamped to the whole input.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size < 1 {
		return [][]T{items}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks
}
