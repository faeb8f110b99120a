package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceSlice returns a copy of *ptr when the patch carries the field, otherwise fallback.
func CoalesceSlice[T any](ptr *[]T, fallback []T) []T {
	if ptr == nil {
		return fallback
	}
	out := make([]T, len(*ptr))
	copy(out, *ptr)
	return out
}
