// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: main.go — hashlife demo CLI
//
// Usage:
//
//	hashlife run <pattern> <generations> [--config <file>]
//	hashlife bench [--config <file>]
//
// The external-collaborator surface spec.md §1 scopes out of the
// computational core: it loads a pattern, builds a universe.Universe sized
// by internal/config, seeds the pattern into a tier-1 macrocell, advances it
// with at most one macrocell Next call (tier 1 to tier 0), and prints the
// resulting cell block or tier occupancy.
//
// Grounded on cli-tools/cmd/onfs/main.go's flag.String/flag.Bool front end,
// restyled around two subcommands instead of one flat flag set.
// ─────────────────────────────────────────────────────────────────────────────

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Quinten-van-Woerkom/hashlife/cell"
	"github.com/Quinten-van-Woerkom/hashlife/cmd/hashlife/patternstore"
	"github.com/Quinten-van-Woerkom/hashlife/internal/config"
	"github.com/Quinten-van-Woerkom/hashlife/internal/telemetry"
	"github.com/Quinten-van-Woerkom/hashlife/nodeptr"
	"github.com/Quinten-van-Woerkom/hashlife/universe"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCommand(os.Args[2:])
	case "bench":
		benchCommand(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  hashlife run <pattern> <generations> [--config <file>]")
	fmt.Fprintln(os.Stderr, "  hashlife bench [--config <file>]")
}

func builtinPatterns() patternstore.Library {
	var l patternstore.Library
	l.Add("blinker", cell.Blinker())
	l.Add("toad", cell.Toad())
	l.Add("beacon", cell.Beacon())
	l.Add("glider", cell.Glider())
	l.Add("block", cell.Block4())
	l.Add("beehive", cell.Beehive())
	return l
}

func loadCapacities(configPath string) config.Capacities {
	if configPath == "" {
		return config.Default()
	}
	f, err := os.Open(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashlife: opening config %s: %v\n", configPath, err)
		os.Exit(1)
	}
	defer f.Close()

	c, err := config.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashlife: loading config: %v\n", err)
		os.Exit(1)
	}
	return c
}

func buildUniverse(c config.Capacities, log telemetry.Logger) *universe.Universe {
	u, err := universe.New(c.CellCapacity, c.TierCapacities())
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashlife: %v\n", err)
		os.Exit(1)
	}
	u.WithLogger(log)
	return u
}

// seedTierOne interns a 16x16-worth-of-cells region split across four
// base-cell quadrants and wraps it in a single tier-1 macrocell.
func seedTierOne(u *universe.Universe, pattern cell.Block) nodeptr.Ptr {
	empty, _ := u.InternCell(cell.EmptySquare())
	nw, _ := u.InternCell(pattern)
	m, ok := u.InternMacrocell(1, nw, empty, empty, empty)
	if !ok {
		fmt.Fprintln(os.Stderr, "hashlife: tier 1 saturated while seeding")
		os.Exit(1)
	}
	return m
}

func runCommand(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML capacity config")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 2 {
		usage()
		os.Exit(1)
	}
	patternName := rest[0]
	generations, err := strconv.Atoi(rest[1])
	if err != nil || generations < 0 {
		fmt.Fprintf(os.Stderr, "hashlife: invalid generation count %q\n", rest[1])
		os.Exit(1)
	}

	library := builtinPatterns()
	pattern, ok := library.Find(patternName)
	if !ok {
		fmt.Fprintf(os.Stderr, "hashlife: unknown pattern %q\n", patternName)
		os.Exit(1)
	}

	c := loadCapacities(*configPath)
	log := telemetry.Default()
	u := buildUniverse(c, log)

	m := seedTierOne(u, pattern)
	tier := 1
	jumps := generations / 4
	for i := 0; i < jumps; i++ {
		result, ok := u.Next(tier, m)
		if !ok {
			fmt.Fprintln(os.Stderr, "hashlife: tier saturated during advance")
			os.Exit(1)
		}
		m = result
		tier--
		if tier == 0 {
			break
		}
	}

	if tier == 0 {
		fmt.Println(u.Cell(m).String())
	} else {
		fmt.Printf("stopped at tier %d (pointer %v); request more generations to reach tier 0\n", tier, m)
	}
}

func benchCommand(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML capacity config")
	fs.Parse(args)

	c := loadCapacities(*configPath)
	log := telemetry.Default()
	u := buildUniverse(c, log)

	m := seedTierOne(u, cell.Glider())
	if _, ok := u.Next(1, m); !ok {
		fmt.Fprintln(os.Stderr, "hashlife: tier 1 saturated during bench")
		os.Exit(1)
	}

	cellSize, cellCapacity := u.TierOccupancy(0)
	fmt.Printf("tier 0: size=%d capacity=%d load=%.4f\n", cellSize, cellCapacity, float64(cellSize)/float64(cellCapacity))
	for tier := 1; tier <= u.MaxTier(); tier++ {
		size, capacity := u.TierOccupancy(tier)
		fmt.Printf("tier %d: size=%d capacity=%d load=%.4f\n", tier, size, capacity, float64(size)/float64(capacity))
	}
}
