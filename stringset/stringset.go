// Package stringset implements the copy-based membership set, the
// correctness-equivalent alternative to the zero-copy bufferset strategy.
//
// Entries are independently owned Go strings held in a sets.Set[string], and
// every lookup converts its candidate bytes to a string. That makes both
// construction and matching allocate per entry/candidate, in exchange for a
// structure with no offset bookkeeping at all. Behavior is identical to
// bufferset by construction; the engine picks between them.
package stringset

import (
	"fortio.org/sets"

	"github.com/coregx/ngramset/internal/scan"
)

// Set is an immutable set of strings built from a newline-separated corpus.
// Safe for concurrent use once New has returned.
type Set struct {
	m        sets.Set[string]
	order    []string // insertion order, for Range
	hasEmpty bool
}

// New builds a Set from corpus using the same splitting rules as
// bufferset.New: split on '\n', keep interior empty segments, drop an empty
// segment after the final newline, collapse duplicates. The corpus is not
// retained.
func New(corpus []byte) *Set {
	s := &Set{m: sets.New[string]()}

	pos := 0
	for {
		rel := scan.IndexByte(corpus[pos:], '\n')
		if rel < 0 {
			break
		}
		s.insert(string(corpus[pos : pos+rel]))
		pos += rel + 1
	}
	if pos < len(corpus) {
		s.insert(string(corpus[pos:]))
	}

	return s
}

func (s *Set) insert(entry string) {
	if s.m.Has(entry) {
		return
	}
	s.m.Add(entry)
	s.order = append(s.order, entry)
	if entry == "" {
		s.hasEmpty = true
	}
}

// Contains reports whether b is an entry of the set, byte-exact.
func (s *Set) Contains(b []byte) bool {
	return s.m.Has(string(b))
}

// Len returns the number of unique entries.
func (s *Set) Len() int {
	return s.m.Len()
}

// HasEmpty reports whether the empty string is an entry.
func (s *Set) HasEmpty() bool {
	return s.hasEmpty
}

// Range calls f for every entry in insertion order, stopping early if f
// returns false.
func (s *Set) Range(f func(entry []byte) bool) {
	for _, e := range s.order {
		if !f([]byte(e)) {
			return
		}
	}
}
