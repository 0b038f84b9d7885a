package macrocell

import (
	"testing"

	"github.com/Quinten-van-Woerkom/hashlife/nodeptr"
)

func TestNewHasNullFutures(t *testing.T) {
	c := New(nodeptr.Of(0), nodeptr.Of(1), nodeptr.Of(2), nodeptr.Of(3))
	if c.Step().Valid() || c.Next().Valid() {
		t.Fatal("a freshly constructed macrocell must have null memo slots")
	}
}

func TestEqualityIgnoresMemoSlots(t *testing.T) {
	a := New(nodeptr.Of(0), nodeptr.Of(1), nodeptr.Of(2), nodeptr.Of(3))
	b := New(nodeptr.Of(0), nodeptr.Of(1), nodeptr.Of(2), nodeptr.Of(3))
	b.SetNext(nodeptr.Of(99))

	if !a.Equal(b) {
		t.Fatal("macrocells with equal children but different memo state must be Equal")
	}
}

func TestEqualityRequiresAllChildrenToMatch(t *testing.T) {
	a := New(nodeptr.Of(0), nodeptr.Of(1), nodeptr.Of(2), nodeptr.Of(3))
	b := New(nodeptr.Of(0), nodeptr.Of(1), nodeptr.Of(2), nodeptr.Of(4))
	if a.Equal(b) {
		t.Fatal("macrocells differing in one child must not be Equal")
	}
}

func TestHashIsCommutativeAverse(t *testing.T) {
	a := New(nodeptr.Of(1), nodeptr.Of(2), nodeptr.Of(3), nodeptr.Of(4))
	swapped := New(nodeptr.Of(2), nodeptr.Of(1), nodeptr.Of(3), nodeptr.Of(4))
	if a.Hash() == swapped.Hash() {
		t.Fatal("swapping NW and NE must change the hash")
	}
}

func TestEqualMacrocellsHashEqual(t *testing.T) {
	a := New(nodeptr.Of(5), nodeptr.Of(6), nodeptr.Of(7), nodeptr.Of(8))
	b := New(nodeptr.Of(5), nodeptr.Of(6), nodeptr.Of(7), nodeptr.Of(8))
	if a.Hash() != b.Hash() {
		t.Fatal("macrocells with identical children must hash equal")
	}
}
