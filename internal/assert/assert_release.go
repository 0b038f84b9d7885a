//go:build !hashlifedebug

package assert

// Index is a no-op in release builds; out-of-range accesses fall through
// to the backing slice's own runtime bounds check.
func Index(i, n int) {}

// Occupied is a no-op in release builds.
func Occupied(filled bool) {}
