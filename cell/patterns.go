// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: patterns.go — canonical still-lifes, oscillators and movers
//
// Each factory except Filled (a literal all-ones bitmap) is fixed by
// applying FromText to the canonical glyph string below. Every one
// round-trips through String()'s rows once those rows are joined with '$'
// (FromText ignores the newlines String() puts between rows).
// ─────────────────────────────────────────────────────────────────────────────

package cell

// EmptySquare returns an all-dead 8x8 block.
func EmptySquare() Block { return FromText("$$$$$$$$") }

// Block4 returns the 2x2 still-life block (named Block4 to avoid colliding
// with the Block type).
func Block4() Block { return FromText("$$$...**...$...**...$$$$") }

// Beehive returns the six-cell still-life beehive.
func Beehive() Block { return FromText("$$$...**$..*..*$...**$$$") }

// Loaf returns the seven-cell still-life loaf.
func Loaf() Block { return FromText("$$...**$..*..*$...*.*$....*$$$") }

// Boat returns the five-cell still-life boat.
func Boat() Block { return FromText("$$$..**$..*.*$...*$$$") }

// Tub returns the four-cell still-life tub.
func Tub() Block { return FromText("$$$...*$..*.*$...*$$$") }

// Blinker returns the period-2 blinker oscillator.
func Blinker() Block { return FromText("$$.***$$$$$$") }

// Toad returns the period-2 toad oscillator.
func Toad() Block { return FromText("$$$...***$..***$$$$") }

// Beacon returns the period-2 beacon oscillator.
func Beacon() Block { return FromText("$$..**$..**$....**$....**$$$") }

// Glider returns the canonical glider, which translates one block
// diagonally every four generations.
func Glider() Block { return FromText("$$...*$..*$..***$$$$") }

// Filled returns an all-alive 8x8 block.
func Filled() Block { return Block{bitmap: 0xFFFFFFFFFFFFFFFF} }
