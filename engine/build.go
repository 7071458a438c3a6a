// build.go contains engine construction: strategy resolution, set
// construction and prefilter setup.

package engine

import (
	"github.com/coregx/ngramset/bufferset"
	"github.com/coregx/ngramset/prefilter"
	"github.com/coregx/ngramset/stringset"
)

// autoCopyMax is the corpus size (bytes) up to which StrategyAuto resolves
// to the copy-based set. Below this, the zero-copy table's offset
// bookkeeping costs more than the handful of string allocations it avoids.
const autoCopyMax = 256

// New builds an Engine from a newline-separated corpus.
//
// Construction is the only mutating phase of an Engine's life: the corpus is
// copied (StrategyZeroCopy) or its lines are (StrategyCopy), the entry set
// and optional prefilter are built, and the result is immutable from then
// on. The corpus argument is never retained.
//
// The only error condition is an invalid Config; corpus content cannot fail.
func New(corpus []byte, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategy := cfg.Strategy
	if strategy == StrategyAuto {
		if len(corpus) <= autoCopyMax {
			strategy = StrategyCopy
		} else {
			strategy = StrategyZeroCopy
		}
	}

	e := &Engine{strategy: strategy}
	switch strategy {
	case StrategyZeroCopy:
		e.set = bufferset.New(corpus)
	case StrategyCopy:
		e.set = stringset.New(corpus)
	}

	// A nil prefilter (gated out or failed to build) just means queries run
	// unfiltered; it is never surfaced as an error.
	if cfg.EnablePrefilter {
		e.pre = prefilter.Build(e.set, cfg.MaxPrefilterPatterns)
	}

	return e, nil
}
