// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before the instance is built.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The builder draws from it, so calling
// several builders with the same *rand.Rand yields a fresh instance each
// time. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Seed 0 selects the
// default seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithSolvable makes RandomGrid clear the fewest walls needed to connect
// start and end (see gridgraph.Carve).
func WithSolvable() BuilderOption {
	return func(c *builderConfig) {
		c.solvable = true
	}
}
