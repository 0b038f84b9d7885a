// ─────────────────────────────────────────────────────────────────────────────
// [Package]: nodeptr — tier-scoped index standing in for an object reference
//
// Purpose:
//   - A macrocell's children are indices into the tier below, never pointers
//     or references to other macrocells. This flattens the DAG into arrays,
//     makes hashing an identity operation, and removes any need for
//     cycle-aware garbage collection.
//
// Grounded on original_source/include/macrocell.hpp's pointer class (a
// uint32_t wrapping a reserved max-value null sentinel), and styled after
// the teacher's Handle/nilIdx pattern in compactqueue128.
// ─────────────────────────────────────────────────────────────────────────────

package nodeptr

// Ptr is a 32-bit tier-scoped index. Null is the reserved max value; every
// other value is a valid index into the tier's arena/set.
type Ptr uint32

// Null is the reserved sentinel denoting "no node".
const Null Ptr = ^Ptr(0)

// Of wraps a raw index as a Ptr.
//
//go:inline
func Of(index uint32) Ptr { return Ptr(index) }

// Valid reports whether p refers to an actual slot.
//
//go:inline
func (p Ptr) Valid() bool { return p != Null }

// Index returns the raw slot index. Calling Index on Null yields an
// out-of-range value by construction; callers must check Valid first.
//
//go:inline
func (p Ptr) Index() uint32 { return uint32(p) }

// Hash returns the pointer's identity hash: the raw index itself.
// Identity-hashing is sound here because the hash-consing set guarantees
// exactly one pointer per distinct interned value.
//
//go:inline
func (p Ptr) Hash() uint64 { return uint64(p) }

// Equal compares two pointers by raw index.
//
//go:inline
func (p Ptr) Equal(other Ptr) bool { return p == other }
