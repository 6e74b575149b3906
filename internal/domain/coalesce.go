package domain

// FromPtr returns the value of the first non-nil pointer, or fallback.
// Patches use it to leave absent fields unchanged.
func FromPtr[T any](fallback T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
