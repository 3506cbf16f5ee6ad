package utils

// FindIndex returns the index of the first element equal to item, -1 if there is none.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Without returns the elements of slice, in order, that do not appear in excluded.
// Every duplicate of an excluded element is removed.
func Without[T comparable](slice []T, excluded []T) []T {
	kept := make([]T, 0, len(slice))
	for _, v := range slice {
		if FindIndex(excluded, v) < 0 {
			kept = append(kept, v)
		}
	}
	return kept
}
