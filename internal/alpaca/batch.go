package alpaca

// chunk splits items into consecutive sub-slices of at most size elements,
// preserving order. The last batch may be shorter. Empty input yields no
// batches. The returned batches alias the input slice.
func chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for size < len(items) {
		batches = append(batches, items[:size])
		items = items[size:]
	}
	return append(batches, items)
}
