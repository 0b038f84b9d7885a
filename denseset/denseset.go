// ─────────────────────────────────────────────────────────────────────────────
// [Package]: denseset — open-addressed hash-consing set, insert-only
//
// Purpose:
//   - Backs every tier's interning table: cell blocks at tier 0, macrocells
//     at tier n >= 1. No deletions ever occur — nodes live until the whole
//     table is cleared — so there are no tombstones, no Robin Hood
//     reshuffling, and no rehashing. A pointer obtained from Emplace stays
//     valid, and stays pointing at the same key, until Clear.
//   - A packed 1-byte-per-slot metadata array (occupancy bit + 7-bit
//     reduced-hash tag) lets lookups reject most non-matches without
//     touching the key array, the SwissTable-metadata trick without SIMD.
//
// Grounded on original_source/include/dense_set.hpp for the exact
// semantics (bounded 10-slot insertion probe vs. unbounded lookup probe,
// the 0xEF tag mask, capacity-0 as a domain error), restyled with the
// teacher's packed-metadata-byte idiom from pairidx/map.go and its
// Handle/nilIdx-flavoured "end is one past capacity" iterator convention
// from compactqueue128. Key and metadata storage are carved from an
// arena.Arena rather than allocated directly, so a tier's "hash-consing set
// and its backing arena" (the pairing the universe package's resource model
// is built on) is a literal struct field, not just a turn of phrase.
// ─────────────────────────────────────────────────────────────────────────────

package denseset

import (
	"errors"

	"github.com/Quinten-van-Woerkom/hashlife/arena"
	"github.com/Quinten-van-Woerkom/hashlife/fixedbuf"
	"github.com/Quinten-van-Woerkom/hashlife/internal/assert"
)

// ErrZeroCapacity is returned by New when asked to construct a set with
// capacity <= 0; this is a programmer error, not a recoverable runtime
// condition.
var ErrZeroCapacity = errors.New("denseset: capacity must be greater than zero")

// maxProbe bounds the number of consecutive slots Emplace will examine
// before declaring the table saturated at this hash.
const maxProbe = 10

// reducedHashMask reproduces the historical tag mask: 0xEF rather than the
// expected 0x7F. The design note in spec accompanying this table treats it
// as a suspected typo, but mandates preserving it exactly for compatibility
// with persisted inputs; it is applied on top of a 7-bit shift, so it only
// ever zeroes bit 4 of the tag.
const reducedHashMask uint8 = 0xEF

// meta packs one slot's occupancy flag (bit 7) and 7-bit reduced-hash tag
// (bits 0-6) into a single byte.
type meta uint8

const occupiedBit meta = 0x80

func packMeta(tag uint8) meta { return occupiedBit | meta(tag&reducedHashMask) }
func (m meta) occupied() bool { return m&occupiedBit != 0 }
func (m meta) tag() uint8     { return uint8(m&^occupiedBit) & reducedHashMask }

// Iterator is an index into the set's slot arrays. End() is one past the
// last slot; dereferencing it is undefined.
type Iterator int

// Set is an open-addressed, fixed-capacity hash-consing set over K. Its key
// and metadata storage are each carved in one shot from an arena.Arena: the
// set never grows, so a single allocate-all-slots-up-front call is all
// either arena ever does.
type Set[K any] struct {
	keyArena  *arena.Arena[K]
	metaArena *arena.Arena[meta]
	keys      fixedbuf.Buf[K]
	slots     fixedbuf.Buf[meta]
	size      int
	hash      func(K) uint64
	equal     func(a, b K) bool
}

// New constructs an empty set with the given fixed capacity, hash function
// and equality predicate. Capacity must be positive.
func New[K any](capacity int, hash func(K) uint64, equal func(a, b K) bool) (*Set[K], error) {
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}
	keyArena := arena.New[K](capacity)
	metaArena := arena.New[meta](capacity)
	return &Set[K]{
		keyArena:  keyArena,
		metaArena: metaArena,
		keys:      fixedbuf.From(keyArena.Allocate(capacity)),
		slots:     fixedbuf.From(metaArena.Allocate(capacity)),
		hash:      hash,
		equal:     equal,
	}, nil
}

// Begin returns an iterator to slot 0, whether or not it is occupied.
func (s *Set[K]) Begin() Iterator { return 0 }

// End returns the one-past-the-last-slot iterator.
func (s *Set[K]) End() Iterator { return Iterator(s.Capacity()) }

// Capacity returns the set's fixed slot count.
func (s *Set[K]) Capacity() int { return s.keys.Len() }

// Size returns the number of occupied slots.
func (s *Set[K]) Size() int { return s.size }

// Empty reports whether the set holds no elements.
func (s *Set[K]) Empty() bool { return s.size == 0 }

// At dereferences an occupied iterator. Calling At on End() or on an empty
// slot is a programmer error, checked only in debug builds.
func (s *Set[K]) At(it Iterator) K {
	assert.Occupied(s.slotAt(int(it)).occupied())
	return *s.keys.At(int(it))
}

// Mutable returns a pointer into the slot an occupied iterator names, for
// in-place updates that do not change the key's hash or equality (such as
// a macrocell's memoized future pointers). Calling Mutable on End() or on
// an empty slot is a programmer error, checked only in debug builds.
func (s *Set[K]) Mutable(it Iterator) *K {
	assert.Occupied(s.slotAt(int(it)).occupied())
	return s.keys.At(int(it))
}

// Advance returns the next iterator after it, skipping empty slots, for
// walking the set from Begin() to End(). Unlike the hash-bucket probe
// chains used by Find/Emplace, plain iteration never wraps: it runs straight
// through the slot array and stops at End() once no occupied slot remains.
func (s *Set[K]) Advance(it Iterator) Iterator {
	next := int(it) + 1
	for next < s.Capacity() && !s.slotAt(next).occupied() {
		next++
	}
	return Iterator(next)
}

func (s *Set[K]) slotAt(i int) meta { return *s.slots.At(i) }

func reducedHash(h uint64) uint8 {
	const width = 64
	return uint8(h>>(width-7)) & reducedHashMask
}

// Find returns an iterator to the occupied slot whose tag matches and whose
// key equals key, or End() if no such slot exists. Unlike Emplace's
// insertion probe, Find follows the probe chain until it wraps back to its
// start slot or hits an empty slot, whichever comes first — it is never
// bounded to 10 slots.
func (s *Set[K]) Find(key K) Iterator {
	h := s.hash(key)
	tag := reducedHash(h)
	start := int(h % uint64(s.Capacity()))
	return s.findFrom(key, tag, start)
}

func (s *Set[K]) findFrom(key K, tag uint8, start int) Iterator {
	current := start
	for {
		m := s.slotAt(current)
		if !m.occupied() {
			return s.End()
		}
		if m.tag() == tag && s.equal(*s.keys.At(current), key) {
			return Iterator(current)
		}
		current = (current + 1) % s.Capacity()
		if current == start {
			return s.End()
		}
	}
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool { return s.Find(key) != s.End() }

// Count returns 1 if key is present, 0 otherwise (a set never holds
// duplicates).
func (s *Set[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Emplace inserts key if not already present. It returns (iterator, true)
// on a fresh insertion, (iterator-to-existing, false) if key was already
// present, and (End(), false) if the bounded 10-slot insertion probe found
// no free slot — callers distinguish "already present" from "saturated" by
// comparing the returned iterator against End().
func (s *Set[K]) Emplace(key K) (Iterator, bool) {
	h := s.hash(key)
	tag := reducedHash(h)
	start := int(h % uint64(s.Capacity()))

	if existing := s.findFrom(key, tag, start); existing != s.End() {
		return existing, false
	}

	idx, ok := s.probe(start)
	if !ok {
		return s.End(), false
	}

	*s.slots.At(idx) = packMeta(tag)
	*s.keys.At(idx) = key
	s.size++
	return Iterator(idx), true
}

// probe walks at most maxProbe consecutive slots starting at start looking
// for an empty one, matching the bounded-insertion contract: it checks
// start itself, then up to maxProbe-1 further slots, stopping early if it
// wraps back to start.
func (s *Set[K]) probe(start int) (int, bool) {
	current := start
	visited := 0
	for {
		if !s.slotAt(current).occupied() {
			return current, true
		}
		current = (current + 1) % s.Capacity()
		visited++
		if current == start || visited == maxProbe {
			return 0, false
		}
	}
}

// Clear resets every slot's occupancy bit in one linear sweep. Keys become
// logically unreachable immediately; any iterator obtained before Clear is
// invalid afterward.
func (s *Set[K]) Clear() {
	for i := 0; i < s.Capacity(); i++ {
		*s.slots.At(i) = 0
	}
	s.size = 0
}
