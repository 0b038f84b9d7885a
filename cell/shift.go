// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: shift.go — single row/column shifts with zero-fill
//
// North/South/East/West each move the whole 8x8 block by one row or column,
// filling the vacated edge with dead cells. The universe package does not
// use them: it assembles its half-overlapping regions from grandchild
// pointers and, at tier 1, with Center.
// ─────────────────────────────────────────────────────────────────────────────

package cell

const (
	colLeftMask  uint64 = 0x7F7F7F7F7F7F7F7F // every column but the rightmost
	colRightMask uint64 = 0xFEFEFEFEFEFEFEFE // every column but the leftmost
)

// North shifts the block one row up (toward y=0); the bottom row is
// zero-filled and the top row's content is lost.
//
//go:inline
func (b Block) North() Block { return Block{bitmap: b.bitmap >> Columns} }

// South shifts the block one row down (toward y=7); the top row is
// zero-filled and the bottom row's content is lost.
//
//go:inline
func (b Block) South() Block { return Block{bitmap: b.bitmap << Columns} }

// East shifts the block one column right (toward x=7); the leftmost column
// is zero-filled and the rightmost column's content is lost.
//
//go:inline
func (b Block) East() Block { return Block{bitmap: (b.bitmap & colLeftMask) << 1} }

// West shifts the block one column left (toward x=0); the rightmost column
// is zero-filled and the leftmost column's content is lost.
//
//go:inline
func (b Block) West() Block { return Block{bitmap: (b.bitmap & colRightMask) >> 1} }
