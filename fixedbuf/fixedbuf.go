// ─────────────────────────────────────────────────────────────────────────────
// [Package]: fixedbuf — fixed-capacity buffer with no resize
//
// Purpose:
//   - Holds N elements of T, N fixed at construction, backing both the
//     arena package's slot storage and the denseset package's slot
//     metadata/key arrays.
//   - Exists to eliminate reallocation cost on the hot path: capacities are
//     chosen up front, so indexing is the only operation that touches the
//     backing array after construction.
//
// Grounded on the arena's static_vector<T> (fixed-size, allocate-once,
// bounds-checked-only-in-debug), recast as a Go generic value type.
// ─────────────────────────────────────────────────────────────────────────────

package fixedbuf

import "github.com/Quinten-van-Woerkom/hashlife/internal/assert"

// Buf holds a fixed number of T, set at construction via New. There is no
// resize operation; Assign reallocates only when the new size differs from
// the current one.
type Buf[T any] struct {
	slots []T
}

// New allocates a buffer of n value-initialized T.
func New[T any](n int) Buf[T] {
	return Buf[T]{slots: make([]T, n)}
}

// From wraps an already-allocated slice as a Buf, without copying. Used to
// let a Buf's storage be carved from an arena.Arena instead of allocated
// independently.
func From[T any](storage []T) Buf[T] {
	return Buf[T]{slots: storage}
}

// Fill constructs a buffer of n slots, each initialized to value.
func Fill[T any](n int, value T) Buf[T] {
	b := New[T](n)
	for i := range b.slots {
		b.slots[i] = value
	}
	return b
}

// Len returns the buffer's fixed size.
func (b *Buf[T]) Len() int { return len(b.slots) }

// Empty reports whether the buffer has zero capacity.
func (b *Buf[T]) Empty() bool { return len(b.slots) == 0 }

// At returns a pointer to slot i. Indexing outside [0, Len()) is a
// programmer error; it is only checked in debug builds (see
// internal/assert), since callers on the hot path are expected to have
// already validated the index against Len().
func (b *Buf[T]) At(i int) *T {
	assert.Index(i, len(b.slots))
	return &b.slots[i]
}

// Slice exposes the backing storage directly for iteration.
func (b *Buf[T]) Slice() []T { return b.slots }

// Assign replaces the buffer's contents with other's, reallocating the
// backing array only if the sizes differ.
func (b *Buf[T]) Assign(other Buf[T]) {
	if len(b.slots) != len(other.slots) {
		b.slots = make([]T, len(other.slots))
	}
	copy(b.slots, other.slots)
}

// Swap exchanges the backing storage of b and other in place.
func (b *Buf[T]) Swap(other *Buf[T]) {
	b.slots, other.slots = other.slots, b.slots
}
