// find.go contains the two query operations: whole-query membership and the
// n-gram sliding-window sweep.

package engine

import (
	"sync/atomic"

	"github.com/coregx/ngramset/internal/scan"
)

// Contains reports whether the whole of b is one dictionary entry. No
// tokenization takes place: "new york" matches only if the corpus had a
// literal "new york" line.
func (e *Engine) Contains(b []byte) bool {
	atomic.AddUint64(&e.stats.ContainsCalls, 1)

	if e.pre != nil {
		// An entry equal to b would in particular occur inside b.
		if !e.pre.MightMatch(b) {
			atomic.AddUint64(&e.stats.PrefilterSkips, 1)
			return false
		}
		atomic.AddUint64(&e.stats.PrefilterPasses, 1)
	}

	return e.set.Contains(b)
}

// FindAllMatches returns every n-gram of query, up to maxNgramSize
// space-delimited words long, that equals a dictionary entry. Each returned
// string is a fresh copy; none alias the query buffer.
//
// The sweep walks the space delimiters left to right while holding the last
// maxNgramSize token start offsets. At every delimiter (and once at the end
// of the query) each pending start S is probed as query[S:P], oldest start
// first, so for a fixed end position the longest window is reported before
// the shorter ones, and the same text is reported once per window that
// produced it. Splitting is on the single byte ' ' with no run collapsing:
// two adjacent spaces delimit an empty token, consistent with how adjacent
// newlines produce an empty dictionary entry.
//
// maxNgramSize values below 1 are treated as 1.
func (e *Engine) FindAllMatches(query []byte, maxNgramSize int) []string {
	atomic.AddUint64(&e.stats.FindCalls, 1)

	if maxNgramSize < 1 {
		maxNgramSize = 1
	}

	if e.pre != nil {
		if !e.pre.MightMatch(query) {
			atomic.AddUint64(&e.stats.PrefilterSkips, 1)
			return nil
		}
		atomic.AddUint64(&e.stats.PrefilterPasses, 1)
	}

	var matches []string

	// The ring holds at most one pending start per token seen, so its
	// capacity is bounded by the query's token count; maxNgramSize alone
	// does not size anything and may be arbitrarily large.
	capacity := maxNgramSize
	if tokens := scan.CountByte(query, ' ') + 1; tokens < capacity {
		capacity = tokens
	}

	w := newWindow(capacity)
	w.push(0)
	pos := 0

	for {
		end := len(query)
		if rel := scan.IndexByte(query[pos:], ' '); rel >= 0 {
			end = pos + rel
		}

		for i := 0; i < w.len(); i++ {
			candidate := query[w.at(i):end]
			if e.set.Contains(candidate) {
				matches = append(matches, string(candidate))
			}
		}

		if w.len() == maxNgramSize {
			w.popFront()
		}

		if end == len(query) {
			break
		}
		pos = end + 1
		w.push(pos)
	}

	return matches
}
