package fixedbuf

import "testing"

func TestNewIsZeroValued(t *testing.T) {
	b := New[int](4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		if *b.At(i) != 0 {
			t.Errorf("slot %d = %d, want 0", i, *b.At(i))
		}
	}
}

func TestFillSetsEverySlot(t *testing.T) {
	b := Fill(5, "x")
	for i := 0; i < b.Len(); i++ {
		if *b.At(i) != "x" {
			t.Errorf("slot %d = %q, want %q", i, *b.At(i), "x")
		}
	}
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-bounds index")
		}
	}()
	b := New[int](3)
	_ = b.At(3)
}

func TestAssignReallocatesOnlyOnSizeChange(t *testing.T) {
	a := Fill(3, 1)
	other := Fill(3, 2)
	a.Assign(other)
	for i := 0; i < a.Len(); i++ {
		if *a.At(i) != 2 {
			t.Errorf("slot %d = %d, want 2", i, *a.At(i))
		}
	}

	bigger := Fill(5, 7)
	a.Assign(bigger)
	if a.Len() != 5 {
		t.Fatalf("Len() after growing assign = %d, want 5", a.Len())
	}
}

func TestSwapExchangesStorage(t *testing.T) {
	a := Fill(2, 1)
	b := Fill(2, 2)
	a.Swap(&b)
	if *a.At(0) != 2 || *b.At(0) != 1 {
		t.Fatal("Swap did not exchange backing storage")
	}
}
