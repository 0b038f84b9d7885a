// ─────────────────────────────────────────────────────────────────────────────
// [Package]: arena — bump allocator with no individual deallocation
//
// Purpose:
//   - Backs the denseset package's slot storage: Hashlife nodes never die
//     individually, so a monotonically advancing head and a single full
//     reset are all the lifetime management the engine needs.
//   - Gives allocation-order cache locality for free, since slots are handed
//     out in a single forward sweep.
//
// Grounded on original_source/include/hash_set.hpp's memory_arena<T>, ported
// from a raw-pointer bump allocator to a slice-returning one: Allocate
// returns a view over n consecutive slots rather than a raw T*, which is the
// idiomatic Go reading of "pointer to n consecutive slots".
// ─────────────────────────────────────────────────────────────────────────────

package arena

import "github.com/Quinten-van-Woerkom/hashlife/fixedbuf"

// Arena is a fixed-capacity bump allocator over T.
type Arena[T any] struct {
	storage fixedbuf.Buf[T]
	head    int
}

// New allocates an arena with room for capacity slots; head starts at 0.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{storage: fixedbuf.New[T](capacity)}
}

// Allocate returns a view over n consecutive slots and advances head by n.
// If head+n would exceed the arena's capacity, it returns nil and leaves
// head unchanged.
//
//go:nosplit
//go:inline
func (a *Arena[T]) Allocate(n int) []T {
	newHead := a.head + n
	if newHead > a.storage.Len() {
		return nil
	}
	old := a.head
	a.head = newHead
	return a.storage.Slice()[old:newHead]
}

// Deallocate is a no-op: the arena is reclaimed as a whole, either by Reset
// or by the arena going out of scope.
func (a *Arena[T]) Deallocate([]T) {}

// Full reports whether every slot has been handed out.
//
//go:inline
func (a *Arena[T]) Full() bool { return a.head == a.storage.Len() }

// Capacity returns the arena's fixed slot count.
func (a *Arena[T]) Capacity() int { return a.storage.Len() }

// Size returns the number of slots handed out so far.
func (a *Arena[T]) Size() int { return a.head }

// Reset rewinds head to 0, reclaiming every previously allocated slot in
// one step. Any previously returned slice aliases storage that is now
// logically free and may be overwritten by the next Allocate.
func (a *Arena[T]) Reset() { a.head = 0 }
