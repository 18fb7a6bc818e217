// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies default seeding, WithSeed reproducibility and
// WithRand pass-through.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	def := newBuilderConfig()
	require.NotNil(t, def.rng, "a default RNG is always resolved")
	assert.Equal(t, rand.New(rand.NewSource(DefaultSeed)).Int63(), def.rng.Int63())

	zero := newBuilderConfig(WithSeed(0))
	assert.Equal(t, rand.New(rand.NewSource(DefaultSeed)).Int63(), zero.rng.Int63(), "seed 0 selects the default seed")

	a, b := newBuilderConfig(WithSeed(42)), newBuilderConfig(WithSeed(42))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(7))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)

	last := newBuilderConfig(WithRand(r), WithSeed(9))
	assert.NotSame(t, r, last.rng, "later options override earlier ones")
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "builder: WithRand(nil)", func() { WithRand(nil) })
}

func TestSolvableOption(t *testing.T) {
	assert.False(t, newBuilderConfig().solvable)
	assert.True(t, newBuilderConfig(WithSolvable()).solvable)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateMin("M", "n", 1, 1))
	assert.ErrorIs(t, validateMin("M", "n", 0, 1), ErrTooSmall)
	assert.NoError(t, validateProbability("M", 0))
	assert.NoError(t, validateProbability("M", 1))
	assert.ErrorIs(t, validateProbability("M", -0.1), ErrInvalidProbability)
	assert.ErrorIs(t, validateProbability("M", 1.5), ErrInvalidProbability)
}
