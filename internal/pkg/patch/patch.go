// Package patch applies optional PATCH fields over current values.
package patch

// Or returns *v when the field was sent, current otherwise.
func Or[T any](v *T, current T) T {
	if v == nil {
		return current
	}
	return *v
}

// Changed reports whether the field was sent with a different value.
func Changed[T comparable](v *T, current T) bool {
	return v != nil && *v != current
}
