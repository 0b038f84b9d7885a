// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: step.go — branch-free Game of Life evolution (B3/S23)
//
// Algorithm (Tony Finch's "Life in a Register", word-parallel adder form):
//  1. Horizontal 3-wide sum of the bitmap with its left/right shifts by one
//     column: a single full adder yields two bitplanes (mid1, mid2).
//  2. Vertical 3-wide sum of those two planes, shifted up/down by one row:
//     two full adders, a half adder and an XOR collapse the intermediate
//     carries into three final bitplanes (sum1, sum2, sum4) — the 3-bit
//     neighbour count of every cell, computed simultaneously.
//  3. A cell survives/is born exactly when its neighbour count is 3 (with
//     itself alive) or exactly 3 excluding itself; counts of 8 and 9 alias
//     to 0 and 1 in the 3-bit planes, which is harmless since both mean
//     death anyway.
//
// The one-cell border is left undefined by this construction (the border
// cells' neighbourhoods reach outside the block) and is forced to zero by
// borderMask; stitching the border back in from neighbouring blocks is the
// job of the tier above (see the universe package).
// ─────────────────────────────────────────────────────────────────────────────

package cell

import "github.com/Quinten-van-Woerkom/hashlife/bitops"

// Step applies one generation of B3/S23 Game of Life rules to every
// interior cell. The returned block's inner 6x6 region is valid; the
// one-cell border is forced to zero.
//
//go:nosplit
//go:inline
func (b Block) Step() Block {
	sum1, sum2, sum4 := b.neighbours()
	alive3 := b.bitmap & ^sum1 & ^sum2 & sum4 // alive, exactly 3 neighbours
	born3 := sum1 & sum2 & ^sum4              // exactly 3 live cells total in neighbourhood
	return Block{bitmap: (alive3 | born3) & borderMask}
}

// Next returns the block two generations into the future, masked to the
// inner 4x4 region whose complete future is determined by this block alone.
// This is the base case the macrocell recursion in universe.Universe
// bottoms out at.
//
//go:nosplit
//go:inline
func (b Block) Next() Block {
	return Block{bitmap: b.Step().Step().bitmap & innerMask}
}

// neighbours computes the 3-bit neighbour count of every cell in parallel,
// encoded as three bitplanes (sum1, sum2, sum4 — the 1s, 2s and 4s place of
// the count). Counts of 8 and 9 alias to 0 and 1, which never matters since
// both values mean "dies/stays dead".
//
//go:nosplit
//go:inline
func (b Block) neighbours() (sum1, sum2, sum4 uint64) {
	left := b.bitmap << 1
	right := b.bitmap >> 1
	mid1, mid2 := bitops.FullAdd(left, b.bitmap, right)

	up1 := mid1 << Columns
	up2 := mid2 << Columns
	down1 := mid1 >> Columns
	down2 := mid2 >> Columns

	s1, carry2a := bitops.FullAdd(up1, mid1, down1)
	carry2b, carry4a := bitops.FullAdd(up2, mid2, down2)
	s2, carry4b := bitops.HalfAdd(carry2a, carry2b)
	s4 := carry4a ^ carry4b

	return s1, s2, s4
}
