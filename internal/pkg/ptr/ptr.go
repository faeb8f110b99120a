package ptr

// Of returns a pointer to a copy of v, for filling optional patch fields.
func Of[T any](v T) *T {
	return &v
}
