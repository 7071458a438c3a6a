// Package prefilter provides fast query rejection for the n-gram engine.
//
// Every n-gram match is, in particular, a substring occurrence of some
// dictionary entry inside the query. The prefilter exploits that: an
// Aho-Corasick automaton built over all entries answers "does any entry occur
// anywhere in this query" in a single O(len(query)) pass, and a negative
// answer lets the engine skip both the sliding-window sweep and the
// whole-query membership probe entirely.
//
// A prefilter hit is only a candidate signal: the sweep still decides which
// windows actually match. A prefilter miss is authoritative.
//
// Build refuses to produce a prefilter when it cannot be both sound and
// worthwhile:
//   - an empty-string entry occurs in every query but cannot be an automaton
//     pattern, so such dictionaries always take the full path;
//   - an empty dictionary has nothing to match;
//   - very large dictionaries make automaton construction cost more than the
//     sweeps it would save, bounded by the caller's pattern budget.
package prefilter

import (
	"github.com/coregx/ahocorasick"
)

// Membership is the view of the dictionary's entry set the builder needs.
// Both set strategies implement it.
type Membership interface {
	// Len returns the number of unique entries.
	Len() int

	// HasEmpty reports whether the empty string is an entry.
	HasEmpty() bool

	// Range calls f for every entry, stopping early if f returns false.
	Range(f func(entry []byte) bool)
}

// Prefilter rejects queries that cannot contain any dictionary entry.
type Prefilter struct {
	ac *ahocorasick.Automaton
}

// Build constructs a Prefilter over the entries of m, or returns nil when no
// sound and worthwhile prefilter exists (empty dictionary, empty-string
// entry, more than maxPatterns entries, or automaton construction failure).
// A nil result is not an error: the engine simply runs unfiltered.
func Build(m Membership, maxPatterns int) *Prefilter {
	if m == nil || m.Len() == 0 || m.Len() > maxPatterns || m.HasEmpty() {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	m.Range(func(entry []byte) bool {
		builder.AddPattern(entry)
		return true
	})
	auto, err := builder.Build()
	if err != nil {
		return nil
	}

	return &Prefilter{ac: auto}
}

// MightMatch reports whether any dictionary entry occurs as a substring of
// haystack. False means no Contains probe and no window of any FindAllMatches
// sweep over haystack can succeed.
func (p *Prefilter) MightMatch(haystack []byte) bool {
	return p.ac.IsMatch(haystack)
}
