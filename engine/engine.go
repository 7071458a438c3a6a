// Package engine implements the dictionary-membership and n-gram matching
// engine behind the public ngramset API.
//
// engine.go contains the Engine struct, strategy and configuration types,
// and the stats plumbing.
package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/coregx/ngramset/prefilter"
)

// Strategy selects the internal membership representation.
type Strategy int

const (
	// StrategyAuto lets construction pick: zero-copy for real corpora,
	// copy-based below a small size threshold where view bookkeeping buys
	// nothing.
	StrategyAuto Strategy = iota

	// StrategyZeroCopy stores entries as views into one owned copy of the
	// corpus and allocates nothing per lookup.
	StrategyZeroCopy

	// StrategyCopy stores entries as independently owned strings and
	// allocates one string per candidate probe. Behaviorally identical to
	// StrategyZeroCopy.
	StrategyCopy
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyZeroCopy:
		return "zerocopy"
	case StrategyCopy:
		return "copy"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Config controls engine construction.
type Config struct {
	// Strategy selects the membership representation. Default: StrategyAuto.
	Strategy Strategy

	// EnablePrefilter allows building an Aho-Corasick prefilter over the
	// dictionary entries. The prefilter is skipped regardless when the
	// dictionary is empty, contains an empty-string entry, or has more than
	// MaxPrefilterPatterns entries.
	EnablePrefilter bool

	// MaxPrefilterPatterns bounds the number of entries the prefilter
	// automaton will be built over.
	MaxPrefilterPatterns int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:             StrategyAuto,
		EnablePrefilter:      true,
		MaxPrefilterPatterns: 4096,
	}
}

// Validate checks the configuration for inconsistencies.
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyAuto, StrategyZeroCopy, StrategyCopy:
	default:
		return fmt.Errorf("engine: unknown strategy %d", int(c.Strategy))
	}
	if c.MaxPrefilterPatterns < 0 {
		return fmt.Errorf("engine: MaxPrefilterPatterns must be >= 0, got %d", c.MaxPrefilterPatterns)
	}
	return nil
}

// Stats tracks query statistics for performance analysis.
type Stats struct {
	// ContainsCalls counts whole-query membership probes.
	ContainsCalls uint64

	// FindCalls counts FindAllMatches sweeps requested.
	FindCalls uint64

	// PrefilterSkips counts queries rejected by the prefilter without
	// running the full path.
	PrefilterSkips uint64

	// PrefilterPasses counts queries the prefilter let through.
	PrefilterPasses uint64
}

// membership is the contract both set strategies satisfy. It embeds the
// prefilter's read-only view of the entry set.
type membership interface {
	prefilter.Membership

	// Contains reports byte-exact membership of b.
	Contains(b []byte) bool
}

// Engine answers membership and n-gram queries against one immutable
// dictionary.
//
// Thread safety: the membership set and prefilter are immutable after New
// returns, and the stats counters are updated atomically, so any number of
// goroutines may query one Engine concurrently.
type Engine struct {
	// stats MUST be the first field for proper 8-byte alignment of its
	// uint64 counters on 32-bit platforms.
	stats Stats

	set      membership
	pre      *prefilter.Prefilter
	strategy Strategy
}

// Strategy returns the membership strategy the engine resolved to
// (never StrategyAuto).
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// HasPrefilter reports whether queries are gated by an Aho-Corasick
// prefilter.
func (e *Engine) HasPrefilter() bool {
	return e.pre != nil
}

// Len returns the number of unique dictionary entries.
func (e *Engine) Len() int {
	return e.set.Len()
}

// Stats returns a snapshot of the query counters.
func (e *Engine) Stats() Stats {
	return Stats{
		ContainsCalls:   atomic.LoadUint64(&e.stats.ContainsCalls),
		FindCalls:       atomic.LoadUint64(&e.stats.FindCalls),
		PrefilterSkips:  atomic.LoadUint64(&e.stats.PrefilterSkips),
		PrefilterPasses: atomic.LoadUint64(&e.stats.PrefilterPasses),
	}
}

// ResetStats zeroes the query counters.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.ContainsCalls, 0)
	atomic.StoreUint64(&e.stats.FindCalls, 0)
	atomic.StoreUint64(&e.stats.PrefilterSkips, 0)
	atomic.StoreUint64(&e.stats.PrefilterPasses, 0)
}
