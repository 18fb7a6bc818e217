// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = rngFromSeed(DefaultSeed)
//   • solvable = false

package builder

import "math/rand"

// DefaultSeed is the seed used when no RNG option is given, or WithSeed(0).
const DefaultSeed int64 = 1

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng      *rand.Rand
	solvable bool
}

// newBuilderConfig applies opts in order (later overrides earlier) and
// resolves the RNG.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(DefaultSeed)
	}
	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
