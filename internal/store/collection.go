package store

// Generic collection helpers covering the point-lookup / filtered-scan /
// remove operations the handlers need. Append and full replace are plain
// slice operations on Data inside Update.

// Find returns the first record matching pred.
func Find[T any](records []T, pred func(T) bool) (T, bool) {
	for _, record := range records {
		if pred(record) {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the position of the first record matching pred, or -1.
func FindIndex[T any](records []T, pred func(T) bool) int {
	for i, record := range records {
		if pred(record) {
			return i
		}
	}
	return -1
}

// Filter returns the records matching pred, preserving order.
func Filter[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		if pred(record) {
			out = append(out, record)
		}
	}
	return out
}

// Remove drops every record matching pred, preserving order of the rest.
func Remove[T any](records []T, pred func(T) bool) []T {
	out := records[:0]
	for _, record := range records {
		if !pred(record) {
			out = append(out, record)
		}
	}
	return out
}
