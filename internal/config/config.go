// ─────────────────────────────────────────────────────────────────────────────
// [Package]: config — capacity/tier tuning for cmd/hashlife
//
// Purpose:
//   - Loads the handful of sizing knobs the CLI needs to build a
//     universe.Universe: tier 0's cell-block table size, each macrocell
//     tier's table size, and the number of tiers to pre-size.
//   - universe.New itself stays free of any config-library knowledge; this
//     package exists only to get numbers from a file or the environment
//     into the explicit-capacity constructor cmd/hashlife calls.
//
// Grounded on Meesho-BharatMLStack/skye/pkg/config/yaml.go's
// ReadConfig-then-Unmarshal shape and resource-manager/pkg/config/env.go's
// environment-override convention, both built on spf13/viper.
// ─────────────────────────────────────────────────────────────────────────────

package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
)

// The defaults are sane for a small interactive session: each tier holds on
// the order of 2^16 distinct macrocells.
const defaultTierCapacity = 1 << 16
const defaultCellCapacity = 1 << 16
const defaultTierCount = 32

// Capacities describes the table sizes cmd/hashlife passes to
// universe.New.
type Capacities struct {
	CellCapacity  int   `mapstructure:"cell_capacity"`
	TierCount     int   `mapstructure:"tier_count"`
	TierCapacity  int   `mapstructure:"tier_capacity"`
	TierOverrides []int `mapstructure:"tier_overrides"`
}

// Default returns the built-in sizing, before any file or environment
// override is applied.
func Default() Capacities {
	return Capacities{
		CellCapacity: defaultCellCapacity,
		TierCount:    defaultTierCount,
		TierCapacity: defaultTierCapacity,
	}
}

// Load reads an optional YAML config from r (pass nil to skip), then
// applies HASHLIFE_-prefixed environment overrides, and returns the
// resulting Capacities.
func Load(r io.Reader) (Capacities, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("hashlife")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("cell_capacity", def.CellCapacity)
	v.SetDefault("tier_count", def.TierCount)
	v.SetDefault("tier_capacity", def.TierCapacity)

	if r != nil {
		if err := v.ReadConfig(r); err != nil {
			return Capacities{}, fmt.Errorf("config: reading config: %w", err)
		}
	}

	var c Capacities
	if err := v.Unmarshal(&c); err != nil {
		return Capacities{}, fmt.Errorf("config: unmarshalling config: %w", err)
	}
	if c.CellCapacity <= 0 {
		return Capacities{}, fmt.Errorf("config: cell_capacity must be positive, got %d", c.CellCapacity)
	}
	if c.TierCount <= 0 {
		return Capacities{}, fmt.Errorf("config: tier_count must be positive, got %d", c.TierCount)
	}
	return c, nil
}

// TierCapacities expands the configured per-tier sizing into the slice
// universe.New expects: one entry per tier 1..TierCount, using
// TierOverrides[i] when present and TierCapacity otherwise.
func (c Capacities) TierCapacities() []int {
	out := make([]int, c.TierCount)
	for i := range out {
		if i < len(c.TierOverrides) && c.TierOverrides[i] > 0 {
			out[i] = c.TierOverrides[i]
		} else {
			out[i] = c.TierCapacity
		}
	}
	return out
}
