package config

import (
	"strings"
	"testing"
)

func TestLoadWithNoInputUsesDefaults(t *testing.T) {
	c, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.CellCapacity != defaultCellCapacity || c.TierCount != defaultTierCount || c.TierCapacity != defaultTierCapacity {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	yaml := strings.NewReader("cell_capacity: 1024\ntier_count: 4\ntier_capacity: 256\n")
	c, err := Load(yaml)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.CellCapacity != 1024 || c.TierCount != 4 || c.TierCapacity != 256 {
		t.Fatalf("yaml override did not apply: %+v", c)
	}
}

func TestTierCapacitiesAppliesOverridesSelectively(t *testing.T) {
	c := Capacities{CellCapacity: 8, TierCount: 3, TierCapacity: 10, TierOverrides: []int{0, 99}}
	got := c.TierCapacities()
	want := []int{10, 99, 10}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tier %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestLoadRejectsNonPositiveCapacity(t *testing.T) {
	yaml := strings.NewReader("cell_capacity: 0\n")
	if _, err := Load(yaml); err == nil {
		t.Fatal("expected an error for cell_capacity: 0")
	}
}
