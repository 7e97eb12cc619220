package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// FindIndexFunc returns the index of the first element matching the predicate, or -1.
func FindIndexFunc[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}

// Count returns how many elements match the predicate.
func Count[T any](slice []T, match func(T) bool) int {
	count := 0
	for _, v := range slice {
		if match(v) {
			count++
		}
	}
	return count
}
