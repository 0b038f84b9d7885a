// ─────────────────────────────────────────────────────────────────────────────
// [Package]: macrocell — four children plus two memoized future slots
//
// Purpose:
//   - The non-leaf node of a Hashlife tier: a value object over four
//     nodeptr.Ptr children, interned once per distinct (nw, ne, sw, se)
//     tuple by the owning denseset. The memo slots are mutated exactly once
//     each, after interning, under the table's identity discipline — any
//     two equal macrocells are the same instance, so the memo is shared.
//
// Grounded on original_source/include/macrocell.hpp's macrocell class and
// include/hash.hpp's variadic_hash/hash_combine. Equality and hashing
// consider children only: the original's operator== also compared the
// future slots, but that conflates incidental cache state with identity
// and is not reproduced here.
// ─────────────────────────────────────────────────────────────────────────────

package macrocell

import "github.com/Quinten-van-Woerkom/hashlife/nodeptr"

// Cell is a value object comprising four child pointers and two memoized
// future pointers. Constructing a Cell initializes both future slots to
// nodeptr.Null; only SetStep/SetNext may mutate them afterward.
type Cell struct {
	NW, NE, SW, SE nodeptr.Ptr
	step, next     nodeptr.Ptr
}

// New constructs a macrocell from its four children, with both future
// slots initialized to null.
//
//go:inline
func New(nw, ne, sw, se nodeptr.Ptr) Cell {
	return Cell{NW: nw, NE: ne, SW: sw, SE: se, step: nodeptr.Null, next: nodeptr.Null}
}

// Step returns the memoized one-generation-jump future, or nodeptr.Null if
// it has not yet been computed.
//
//go:inline
func (c Cell) Step() nodeptr.Ptr { return c.step }

// Next returns the memoized jump-step future, or nodeptr.Null if it has not
// yet been computed.
//
//go:inline
func (c Cell) Next() nodeptr.Ptr { return c.next }

// SetStep records the one-generation-jump future. Intended to be called
// exactly once per interned instance.
func (c *Cell) SetStep(p nodeptr.Ptr) { c.step = p }

// SetNext records the jump-step future. Intended to be called exactly once
// per interned instance.
func (c *Cell) SetNext(p nodeptr.Ptr) { c.next = p }

// Equal compares two macrocells by children only; the memo slots are
// incidental state and do not participate in identity.
//
//go:inline
func (c Cell) Equal(other Cell) bool {
	return c.NW == other.NW && c.NE == other.NE && c.SW == other.SW && c.SE == other.SE
}

// Hash combines the four children with a Fibonacci-weighted mix, the same
// combiner construction as variadic_hash in the original hash.hpp: each
// child's hash is folded in via `seed ^= hash + 0x9e3779b9 + seed<<6 +
// seed>>2`. The combiner is commutative-averse — swapping NW and NE changes
// the seed term each feeds into the next fold, so it changes the result.
//
//go:inline
func (c Cell) Hash() uint64 {
	const seed0 uint64 = 42
	seed := seed0
	seed = combine(seed, c.NW.Hash())
	seed = combine(seed, c.NE.Hash())
	seed = combine(seed, c.SW.Hash())
	seed = combine(seed, c.SE.Hash())
	return seed
}

// combine folds one hash into the running seed.
//
//go:inline
func combine(seed, h uint64) uint64 {
	return seed ^ (h + 0x9e3779b9 + (seed << 6) + (seed >> 2))
}
