package jsonrecord

// Ptr returns a pointer to a copy of v, for populating optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p, returning the zero value when p is unset.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Flag encodes b as the 0/1 Long used by boolean-like wire fields.
func Flag(b bool) *int64 {
	var v int64
	if b {
		v = 1
	}
	return &v
}

// Truthy reads a boolean-like Long: unset and 0 are false, anything else
// is true.
func Truthy(v *int64) bool {
	return v != nil && *v != 0
}
