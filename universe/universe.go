// ─────────────────────────────────────────────────────────────────────────────
// [Package]: universe — tier wiring and the Next() jump-step recursion
//
// Purpose:
//   - Owns one hash-consing set per tier: tier 0 interns cell.Block values,
//     tier n >= 1 interns macrocell.Cell values whose four children are
//     nodeptr.Ptr indices into tier n-1.
//   - Implements the jump-step future recursion: Next(tier, ptr) returns the
//     memoized future of the macrocell at (tier, ptr), computing it on first
//     request and storing it in the macrocell's memo slot, which every
//     subsequent request reads back.
//
// There is no original_source grounding for this package — macrocell.hpp's
// `layer` class was an empty, unimplemented stub — so the tier/arena wiring
// and the exact recursive combinatorics below are originated from the prose
// in spec.md §4.8, not ported from C++. See DESIGN.md for the specific
// quadrant-combination choice this implementation makes where the spec's
// prose underdetermines it.
// ─────────────────────────────────────────────────────────────────────────────

package universe

import (
	"fmt"

	"github.com/Quinten-van-Woerkom/hashlife/cell"
	"github.com/Quinten-van-Woerkom/hashlife/denseset"
	"github.com/Quinten-van-Woerkom/hashlife/internal/telemetry"
	"github.com/Quinten-van-Woerkom/hashlife/macrocell"
	"github.com/Quinten-van-Woerkom/hashlife/nodeptr"
)

// Universe owns tier 0's cell-block set and one macrocell set per tier
// above it.
type Universe struct {
	cells      *denseset.Set[cell.Block]
	macrocells []*denseset.Set[macrocell.Cell] // macrocells[i] holds tier i+1
	log        telemetry.Logger
}

// New constructs a Universe with tier 0 sized to cellCapacity and tier n (1
// <= n <= len(tierCapacities)) sized to tierCapacities[n-1]. Saturation and
// reset events are discarded; use WithLogger to observe them.
func New(cellCapacity int, tierCapacities []int) (*Universe, error) {
	cells, err := denseset.New[cell.Block](cellCapacity, cell.Block.Hash, cell.Block.Equal)
	if err != nil {
		return nil, fmt.Errorf("universe: tier 0: %w", err)
	}

	macrocells := make([]*denseset.Set[macrocell.Cell], len(tierCapacities))
	for i, capacity := range tierCapacities {
		set, err := denseset.New[macrocell.Cell](capacity, macrocell.Cell.Hash, macrocell.Cell.Equal)
		if err != nil {
			return nil, fmt.Errorf("universe: tier %d: %w", i+1, err)
		}
		macrocells[i] = set
	}

	return &Universe{cells: cells, macrocells: macrocells, log: telemetry.Discard()}, nil
}

// WithLogger attaches l so saturation and reset events are reported to it.
func (u *Universe) WithLogger(l telemetry.Logger) {
	u.log = l
}

// MaxTier returns the highest macrocell tier this Universe was constructed
// with (tier 0, the cell-block tier, is not counted).
func (u *Universe) MaxTier() int { return len(u.macrocells) }

// TierOccupancy reports the number of interned entries and the fixed
// capacity of the given tier (0 for the cell-block tier), for reporting
// load factor without exposing the underlying denseset.Set.
func (u *Universe) TierOccupancy(tier int) (size, capacity int) {
	if tier == 0 {
		return u.cells.Size(), u.cells.Capacity()
	}
	set := u.macrocellSet(tier)
	return set.Size(), set.Capacity()
}

func (u *Universe) macrocellSet(tier int) *denseset.Set[macrocell.Cell] {
	return u.macrocells[tier-1]
}

// InternCell interns a cell block into tier 0, returning its pointer. The
// second return value is false if tier 0's insertion probe was saturated.
func (u *Universe) InternCell(b cell.Block) (nodeptr.Ptr, bool) {
	it, _ := u.cells.Emplace(b)
	if it == u.cells.End() {
		u.log.Saturated(0, u.cells.Size(), u.cells.Capacity())
		return nodeptr.Null, false
	}
	return nodeptr.Of(uint32(it)), true
}

// Cell dereferences a tier-0 pointer.
func (u *Universe) Cell(p nodeptr.Ptr) cell.Block { return u.cells.At(denseset.Iterator(p)) }

// InternMacrocell interns a macrocell with the given children into the
// given tier, returning its pointer. The children must themselves be
// pointers into tier-1. The second return value is false if that tier's
// insertion probe was saturated.
func (u *Universe) InternMacrocell(tier int, nw, ne, sw, se nodeptr.Ptr) (nodeptr.Ptr, bool) {
	set := u.macrocellSet(tier)
	it, _ := set.Emplace(macrocell.New(nw, ne, sw, se))
	if it == set.End() {
		u.log.Saturated(tier, set.Size(), set.Capacity())
		return nodeptr.Null, false
	}
	return nodeptr.Of(uint32(it)), true
}

// Macrocell dereferences a pointer into the given tier.
func (u *Universe) Macrocell(tier int, p nodeptr.Ptr) macrocell.Cell {
	return u.macrocellSet(tier).At(denseset.Iterator(p))
}

// Next returns the memoized jump-step future of the macrocell at (tier, p),
// computing and storing it on first request. Two consecutive calls for the
// same macrocell return pointer-equal results, and the second is a single
// memo read with no further lookups, since the memoized pointer is checked
// before any work is done.
func (u *Universe) Next(tier int, p nodeptr.Ptr) (nodeptr.Ptr, bool) {
	set := u.macrocellSet(tier)
	it := denseset.Iterator(p)
	m := set.At(it)

	if memoized := m.Next(); memoized.Valid() {
		return memoized, true
	}

	var result nodeptr.Ptr
	var ok bool
	if tier == 1 {
		result, ok = u.nextBaseCase(m)
	} else {
		result, ok = u.nextRecursive(tier, m)
	}
	if !ok {
		return nodeptr.Null, false
	}

	set.Mutable(it).SetNext(result)
	return result, true
}

// nextBaseCase handles tier 1, whose children are base cell blocks: it
// bypasses the general recursion entirely and evaluates the assembled
// center region directly with cell.Next, per spec.md §4.8 point 3.
func (u *Universe) nextBaseCase(m macrocell.Cell) (nodeptr.Ptr, bool) {
	nw, ne, sw, se := u.Cell(m.NW), u.Cell(m.NE), u.Cell(m.SW), u.Cell(m.SE)
	center := cell.Center(nw, ne, sw, se)
	return u.InternCell(center.Next())
}

// nextRecursive handles tier >= 2: it synthesizes the nine tier-(tier-1)
// sub-regions from m's four tier-(tier-1) children (the four children
// themselves, plus five stitched from their grandchildren), recurses Next
// on each, and combines four of the nine results into a single
// tier-(tier-1) macrocell. This always shrinks by exactly one tier, the
// same way nextBaseCase's single cell.Next call shrinks tier 1 to tier 0.
//
// Of the four possible ways to combine four adjacent results out of the
// resulting 3x3 grid, this always takes the north-west-biased one
// (results[0], results[1], results[3], results[4]) — see DESIGN.md for why
// that simplification is sound given this package's testable properties.
func (u *Universe) nextRecursive(tier int, m macrocell.Cell) (nodeptr.Ptr, bool) {
	childTier := tier - 1
	children := u.macrocellSet(childTier)
	nw := children.At(denseset.Iterator(m.NW))
	ne := children.At(denseset.Iterator(m.NE))
	sw := children.At(denseset.Iterator(m.SW))
	se := children.At(denseset.Iterator(m.SE))

	north, ok1 := u.InternMacrocell(childTier, nw.NE, ne.NW, nw.SE, ne.SW)
	west, ok2 := u.InternMacrocell(childTier, nw.SW, nw.SE, sw.NW, sw.NE)
	east, ok3 := u.InternMacrocell(childTier, ne.SW, ne.SE, se.NW, se.NE)
	south, ok4 := u.InternMacrocell(childTier, sw.NE, se.NW, sw.SE, se.SW)
	center, ok5 := u.InternMacrocell(childTier, nw.SE, ne.SW, sw.NE, se.NW)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nodeptr.Null, false
	}

	subregions := [9]nodeptr.Ptr{m.NW, north, m.NE, west, center, east, m.SW, south, m.SE}
	var results [9]nodeptr.Ptr
	for i, sub := range subregions {
		r, ok := u.Next(childTier, sub)
		if !ok {
			return nodeptr.Null, false
		}
		results[i] = r
	}

	return u.InternMacrocell(childTier, results[0], results[1], results[3], results[4])
}

// Reset clears every tier's hash-consing set. Every previously handed-out
// pointer across every tier becomes logically invalid; the caller must
// coordinate a full reset rather than resetting tiers individually.
func (u *Universe) Reset() {
	u.log.Reset(0, u.cells.Size())
	u.cells.Clear()
	for i, set := range u.macrocells {
		u.log.Reset(i+1, set.Size())
		set.Clear()
	}
}
