package ptr

// Of returns a pointer to a copy of v, for optional fields set from literals.
func Of[T any](v T) *T { return &v }
