// Package bufferset implements the zero-copy membership set backing the
// default engine strategy.
//
// The set owns a single copy of the corpus and stores every entry as an
// (offset, length) view into that buffer, so construction performs exactly
// one allocation proportional to the corpus plus two flat side tables, and
// lookups allocate nothing. Entry identity is content identity: two views
// over equal bytes are the same entry, regardless of where the bytes live.
//
// The table is open-addressed with linear probing and is pre-sized from the
// corpus's newline count, so insertion never rehashes. Hashing is xxhash64
// over the raw bytes; a query probe therefore costs one hash of the
// candidate plus (expected) O(1) content comparisons.
package bufferset

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/coregx/ngramset/internal/scan"
)

// span is one entry: a view into Set.buf plus its cached content hash.
type span struct {
	off int
	n   int
	sum uint64
}

// Set is an immutable set of byte strings built from a newline-separated
// corpus. The zero value is not usable; construct with New.
//
// A Set is safe for concurrent use once New has returned: the buffer, the
// entry list and the probe table are never written to afterward.
type Set struct {
	buf      []byte
	entries  []span
	table    []int32 // entry index per slot, -1 when empty
	mask     uint64
	hasEmpty bool
}

// minTableSize keeps degenerate corpora (empty, or a handful of lines) on a
// fixed tiny table instead of special-casing them in the probe loop.
const minTableSize = 8

// New builds a Set from corpus. The corpus is copied once; the argument is
// not retained and may be reused by the caller.
//
// Splitting follows the newline rule exactly: every segment between two
// newlines becomes an entry, including empty segments between adjacent
// newlines, while the segment after the final newline is inserted only when
// it is non-empty. Duplicate lines collapse to a single entry.
//
// Example:
//
//	s := bufferset.New([]byte("new york\nboston\n"))
//	s.Contains([]byte("boston"))   // true
//	s.Contains([]byte("chicago"))  // false
func New(corpus []byte) *Set {
	buf := make([]byte, len(corpus))
	copy(buf, corpus)

	// At most one entry per newline plus the trailing segment; with the
	// table at >= 2x that, the load factor never exceeds 1/2 and insertion
	// cannot run out of slots.
	expected := scan.CountByte(buf, '\n') + 1
	size := minTableSize
	for size < 2*expected {
		size <<= 1
	}

	s := &Set{
		buf:     buf,
		entries: make([]span, 0, expected),
		table:   make([]int32, size),
		mask:    uint64(size - 1),
	}
	for i := range s.table {
		s.table[i] = -1
	}

	pos := 0
	for {
		rel := scan.IndexByte(buf[pos:], '\n')
		if rel < 0 {
			break
		}
		s.insert(pos, pos+rel)
		pos += rel + 1
	}
	if pos < len(buf) {
		s.insert(pos, len(buf))
	}

	return s
}

// insert adds buf[start:end] unless an entry with equal content exists.
func (s *Set) insert(start, end int) {
	b := s.buf[start:end]
	sum := xxhash.Sum64(b)

	i := sum & s.mask
	for {
		idx := s.table[i]
		if idx < 0 {
			s.table[i] = int32(len(s.entries))
			s.entries = append(s.entries, span{off: start, n: end - start, sum: sum})
			if start == end {
				s.hasEmpty = true
			}
			return
		}
		e := s.entries[idx]
		if e.sum == sum && e.n == end-start && bytes.Equal(s.buf[e.off:e.off+e.n], b) {
			return // duplicate line
		}
		i = (i + 1) & s.mask
	}
}

// Contains reports whether b is an entry of the set. The comparison is
// byte-exact: no case folding, no trimming, no Unicode normalization.
// b is only read; it is never retained.
func (s *Set) Contains(b []byte) bool {
	sum := xxhash.Sum64(b)

	i := sum & s.mask
	for {
		idx := s.table[i]
		if idx < 0 {
			return false
		}
		e := s.entries[idx]
		if e.sum == sum && e.n == len(b) && bytes.Equal(s.buf[e.off:e.off+e.n], b) {
			return true
		}
		i = (i + 1) & s.mask
	}
}

// Len returns the number of unique entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// HasEmpty reports whether the empty string is an entry (the corpus started
// with a newline or contained two adjacent newlines).
func (s *Set) HasEmpty() bool {
	return s.hasEmpty
}

// Range calls f for every entry in insertion order, stopping early if f
// returns false. The slice passed to f aliases the set's internal buffer and
// must not be modified or retained.
func (s *Set) Range(f func(entry []byte) bool) {
	for _, e := range s.entries {
		if !f(s.buf[e.off : e.off+e.n]) {
			return
		}
	}
}
