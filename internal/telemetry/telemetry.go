// ─────────────────────────────────────────────────────────────────────────────
// [Package]: telemetry — cold-path structured logging
//
// Purpose:
//   - Gives arena exhaustion, probe saturation, and tier reset a single,
//     structured place to report themselves, without threading an error
//     return through every hot-path call that doesn't need one.
//   - Deliberately narrow: nothing in cell, denseset or macrocell calls into
//     this package, and universe calls it only when an intern saturates
//     (including inside Next) or on Reset. Success paths stay on the
//     ordinary (value, ok bool) contract and are silent.
//
// Grounded on debug/debug.go's DropError/DropMessage cold-path discipline
// (only called from failure/diagnostic branches, never from a hot loop),
// restyled onto zerolog's structured event builder instead of the teacher's
// hand-rolled alloc-free stderr writer — zerolog is SPEC_FULL.md's ambient
// logging dependency, and a cold path that fires at most once per
// saturation event has no allocation budget to protect.
// ─────────────────────────────────────────────────────────────────────────────

package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger reports the handful of cold-path events the engine can hit:
// an interning table's insertion probe saturating, or a tier being reset.
type Logger struct {
	log zerolog.Logger
}

// New builds a Logger writing structured events to w.
func New(w io.Writer) Logger {
	return Logger{log: zerolog.New(w).With().Timestamp().Logger()}
}

// Default builds a Logger writing to stderr in zerolog's console format.
func Default() Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr})
}

// Discard returns a Logger that drops every event; the zero value of Logger
// already behaves this way, since zerolog.Logger's own zero value discards,
// but Discard names the intent explicitly at call sites.
func Discard() Logger {
	return Logger{log: zerolog.Nop()}
}

// Saturated reports that a tier's bounded insertion probe found no free
// slot for a new key. tier is 0 for the cell-block tier.
func (l Logger) Saturated(tier int, size, capacity int) {
	l.log.Warn().
		Int("tier", tier).
		Int("size", size).
		Int("capacity", capacity).
		Msg("hash-consing probe saturated")
}

// ArenaExhausted reports that an arena's bump allocator could not satisfy
// an allocation request of the given size.
func (l Logger) ArenaExhausted(requested, capacity int) {
	l.log.Warn().
		Int("requested", requested).
		Int("capacity", capacity).
		Msg("arena allocation exceeded capacity")
}

// Reset reports that a tier's table (or the whole universe) was cleared.
func (l Logger) Reset(tier int, reclaimed int) {
	l.log.Info().
		Int("tier", tier).
		Int("reclaimed", reclaimed).
		Msg("tier reset")
}
