package cell

import "testing"

func TestConstruction(t *testing.T) {
	empty := EmptySquare()
	block := FromText("$$$...**...$...**...$$$$")

	if !empty.Equal(New(0)) {
		t.Fatal("empty square must equal a zero bitmap")
	}
	if block.Bitmap() != 0x0000001818000000 {
		t.Fatalf("block bitmap = %#x, want 0x0000001818000000", block.Bitmap())
	}
}

func TestStillLifesAreStable(t *testing.T) {
	stillLifes := map[string]Block{
		"empty":   EmptySquare(),
		"block":   Block4(),
		"beehive": Beehive(),
		"loaf":    Loaf(),
		"boat":    Boat(),
		"tub":     Tub(),
	}
	for name, b := range stillLifes {
		if !b.Step().Equal(b) {
			t.Errorf("%s: Step() changed a still-life", name)
		}
		if !b.Next().Equal(b) {
			t.Errorf("%s: Next() changed a still-life", name)
		}
	}
}

func TestOscillatorsArePeriodTwo(t *testing.T) {
	oscillators := map[string]Block{
		"blinker": Blinker(),
		"toad":    Toad(),
		"beacon":  Beacon(),
	}
	for name, b := range oscillators {
		if b.Step().Equal(b) {
			t.Errorf("%s: Step() should change the pattern", name)
		}
		if !b.Step().Step().Equal(b) {
			t.Errorf("%s: Step()+Step() should restore the pattern", name)
		}
	}
}

func TestGliderDisplacement(t *testing.T) {
	glider := FromText("$$...*$..*$..***$$$$")
	movedGlider := FromText("$$$..*$.*$.***$$$")

	moved := glider.Step().Step().Step().Step()
	if !moved.Equal(movedGlider) {
		t.Fatalf("glider after four steps = \n%s\nwant\n%s", moved, movedGlider)
	}
}

func TestPopulationCount(t *testing.T) {
	cases := []struct {
		name string
		b    Block
		want int
	}{
		{"empty", EmptySquare(), 0},
		{"blinker", Blinker(), 3},
		{"block", Block4(), 4},
		{"glider", Glider(), 5},
	}
	for _, c := range cases {
		if got := c.b.PopulationCount(); got != c.want {
			t.Errorf("%s: PopulationCount() = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestStitchingIdentitiesOnFilled(t *testing.T) {
	f := Filled()
	if !Center(f, f, f, f).Equal(f) {
		t.Error("Center(filled, filled, filled, filled) != filled")
	}
	if !Horizontal(f, f).Equal(f) {
		t.Error("Horizontal(filled, filled) != filled")
	}
	if !Vertical(f, f).Equal(f) {
		t.Error("Vertical(filled, filled) != filled")
	}
}

func TestMalformedTextIsTotal(t *testing.T) {
	// Unknown characters are ignored, overflow past 8 rows is discarded;
	// this must not panic.
	b := FromText("$$$$$$$$$$$$$$$$$$$$****????????" + "**")
	_ = b.String()
}

func TestPrintRoundTrip(t *testing.T) {
	for _, b := range []Block{Block4(), Glider(), Beacon(), Filled(), EmptySquare()} {
		roundTripped := FromText(toGlyphs(b))
		if !roundTripped.Equal(b) {
			t.Errorf("pattern did not round-trip through the printable format:\n%s", b)
		}
	}
}

// toGlyphs converts a block's printable format back into Hashlife's
// '*'/'.'/'$' textual format for round-trip testing.
func toGlyphs(b Block) string {
	out := make([]byte, 0, Rows*(Columns+1))
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			if b.At(x, y) {
				out = append(out, '*')
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '$')
	}
	return string(out)
}
