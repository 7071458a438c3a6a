// Package ngramset provides a dictionary-membership and n-gram matching
// engine for Go.
//
// A Dictionary is built once from a newline-separated corpus and is
// immutable afterward. It answers two questions, any number of times:
//   - Contains: is this exact byte string one of the corpus lines?
//   - FindAllMatches: which runs of up to N space-delimited words in this
//     query are corpus lines?
//
// Matching is byte-exact throughout: no case folding, no Unicode-aware
// tokenization, no fuzzy matching. The only delimiters with meaning are the
// newline (corpus lines) and the single space (query words).
//
// Basic usage:
//
//	dict := ngramset.New([]byte("new york\nnew jersey\ncat"))
//
//	dict.ContainsString("new york") // true
//	dict.ContainsString("new")      // false
//
//	dict.FindAllMatchesString("the cat moved to new york", 2)
//	// ["cat", "new york"]
//
// Performance characteristics:
//   - Construction: one pass over the corpus, one owned copy, pre-sized
//     membership table (no rehashing).
//   - FindAllMatches: O(len(query) * maxNgramSize) membership probes worst
//     case; the zero-copy strategy allocates only for returned matches.
//   - An Aho-Corasick prefilter over the entries rejects queries containing
//     no entry at all in a single pass, skipping the sweep entirely.
package ngramset

import (
	"github.com/coregx/ngramset/engine"
)

// Dictionary is an immutable set of corpus lines with n-gram matching over
// queries.
//
// A Dictionary is safe for concurrent use: after construction its only
// mutable state is the atomic stats counters.
//
// Example:
//
//	dict := ngramset.New([]byte("cat\ndog"))
//	if dict.ContainsString("cat") {
//	    println("known!")
//	}
type Dictionary struct {
	engine *engine.Engine
}

// Strategy selects the internal membership representation; see the
// engine.Strategy constants. The zero value (StrategyAuto) picks
// automatically.
type Strategy = engine.Strategy

// Strategy constants re-exported for callers configuring a Dictionary.
const (
	StrategyAuto     = engine.StrategyAuto
	StrategyZeroCopy = engine.StrategyZeroCopy
	StrategyCopy     = engine.StrategyCopy
)

// Config controls Dictionary construction; see engine.Config for the fields.
type Config = engine.Config

// Stats holds query counters; see engine.Stats for the fields.
type Stats = engine.Stats

// DefaultConfig returns the default construction configuration. Callers can
// customize it and pass the result to NewWithConfig.
//
// Example:
//
//	cfg := ngramset.DefaultConfig()
//	cfg.Strategy = ngramset.StrategyCopy
//	dict, err := ngramset.NewWithConfig(corpus, cfg)
func DefaultConfig() Config {
	return engine.DefaultConfig()
}

// New builds a Dictionary from a newline-separated corpus with the default
// configuration. The corpus is copied; the caller's buffer is not retained.
//
// Every maximal run of bytes between newlines becomes one entry, empty runs
// between adjacent newlines included; an empty run after the final newline
// is not an entry, so "a\nb\n" yields exactly {"a", "b"} while "a\n\nb"
// yields {"a", "", "b"}. Duplicate lines collapse.
//
// Construction cannot fail on corpus content; there is no error to handle.
//
// Example:
//
//	dict := ngramset.New([]byte("one\ntwo\nthree"))
//	fmt.Println(dict.Len()) // 3
func New(corpus []byte) *Dictionary {
	e, err := engine.New(corpus, engine.DefaultConfig())
	if err != nil {
		// DefaultConfig always validates; nothing else errors.
		panic("ngramset: " + err.Error())
	}
	return &Dictionary{engine: e}
}

// NewString builds a Dictionary from a corpus held as a string. Behavior is
// byte-identical to New on the string's bytes.
func NewString(corpus string) *Dictionary {
	return New([]byte(corpus))
}

// NewWithConfig builds a Dictionary with a custom configuration. It returns
// an error only for an invalid Config; corpus content cannot fail.
//
// Example:
//
//	cfg := ngramset.DefaultConfig()
//	cfg.EnablePrefilter = false
//	dict, err := ngramset.NewWithConfig(corpus, cfg)
func NewWithConfig(corpus []byte, cfg Config) (*Dictionary, error) {
	e, err := engine.New(corpus, cfg)
	if err != nil {
		return nil, err
	}
	return &Dictionary{engine: e}, nil
}

// Contains reports whether needle is exactly one dictionary entry. The whole
// needle is one candidate; it is not tokenized.
//
// Example:
//
//	dict := ngramset.New([]byte("new york"))
//	dict.Contains([]byte("new york")) // true
//	dict.Contains([]byte("new"))      // false
func (d *Dictionary) Contains(needle []byte) bool {
	return d.engine.Contains(needle)
}

// ContainsString is Contains for a string needle, byte-identical in
// behavior.
func (d *Dictionary) ContainsString(needle string) bool {
	return d.engine.Contains([]byte(needle))
}

// FindAllMatches returns every n-gram of query, up to maxNgramSize
// space-delimited words long, that equals a dictionary entry.
//
// The query is scanned left to right. At each word boundary every window of
// the last maxNgramSize word starts is probed, oldest start first, and each
// hit is appended in probe order; the same text occurring in several windows
// is reported once per window. Returned strings are fresh copies and never
// alias the query buffer. maxNgramSize values below 1 are treated as 1.
//
// An empty result means no window matched; a query that tokenizes to
// nothing useful is indistinguishable from one with no matches.
//
// Example:
//
//	dict := ngramset.New([]byte("new york\ncat"))
//	dict.FindAllMatches([]byte("the cat in new york"), 2)
//	// ["cat", "new york"]
func (d *Dictionary) FindAllMatches(query []byte, maxNgramSize int) []string {
	return d.engine.FindAllMatches(query, maxNgramSize)
}

// FindAllMatchesString is FindAllMatches for a string query, byte-identical
// in behavior.
func (d *Dictionary) FindAllMatchesString(query string, maxNgramSize int) []string {
	return d.engine.FindAllMatches([]byte(query), maxNgramSize)
}

// Len returns the number of unique dictionary entries.
func (d *Dictionary) Len() int {
	return d.engine.Len()
}

// Strategy returns the membership strategy construction resolved to, never
// StrategyAuto.
func (d *Dictionary) Strategy() Strategy {
	return d.engine.Strategy()
}

// Stats returns a snapshot of the dictionary's query counters.
func (d *Dictionary) Stats() Stats {
	return d.engine.Stats()
}

// ResetStats zeroes the query counters.
func (d *Dictionary) ResetStats() {
	d.engine.ResetStats()
}
