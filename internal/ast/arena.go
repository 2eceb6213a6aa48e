package ast

// Arena is index-addressed storage for recursive nodes. IDs are 1-based;
// zero means "no node".
type Arena[T any] struct {
	data []T
}

// NewArena creates an *Arena[T] with capacity capHint (zero is allowed).
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores a value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data)) //nolint:gosec
}

// Get returns a pointer into the arena, nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Len returns the number of allocated values.
func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data)) //nolint:gosec
}
