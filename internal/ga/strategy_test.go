package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findaword/internal/fitness"
)

func TestStrategyRegistriesRoundTrip(t *testing.T) {
	p := Params{TournamentSize: 3, CrossoverPoints: 4, MutationRate: 0.1, SwapRate: 0.3}

	for _, name := range SelectorNames() {
		s, err := NewSelector(name, p)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
	for _, name := range PairerNames() {
		s, err := NewPairer(name, p)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
	for _, name := range CrossoverNames() {
		s, err := NewCrossover(name, p)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
	for _, name := range MutatorNames() {
		s, err := NewMutator(name, p)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	sel, err := NewSelector(" Tournament ", p)
	require.NoError(t, err)
	assert.Equal(t, TournamentSelector{Size: 3}, sel)

	cx, err := NewCrossover("multipoint", p)
	require.NoError(t, err)
	assert.Equal(t, MultipointCrossover{Points: 4}, cx)

	mut, err := NewMutator("swap", p)
	require.NoError(t, err)
	assert.Equal(t, SwapMutation{Rate: 0.3}, mut)
}

func TestUnknownStrategy(t *testing.T) {
	_, err := NewSelector("elitist", Params{})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	_, err = NewPairer("nope", Params{})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	_, err = NewCrossover("nope", Params{})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	_, err = NewMutator("nope", Params{})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestRandomStrategiesIsReproducible(t *testing.T) {
	a := RandomStrategies(Params{}, rand.New(rand.NewSource(42)))
	b := RandomStrategies(Params{}, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
	assert.NoError(t, a.validate())
}

func TestStrategiesString(t *testing.T) {
	s := Strategies{
		Fitness:   fitness.Levenshtein,
		Selection: RankSelector{},
		Pairing:   NonSequentialPairing{},
		Crossover: UniformCrossover{},
		Mutation:  DeletionMutation{},
	}
	assert.Equal(t, "levenshtein/rank/non_sequential/uniform/deletion", s.String())

	s.Mutation = nil
	assert.Equal(t, "levenshtein/rank/non_sequential/uniform/none", s.String())
	assert.ErrorIs(t, s.validate(), ErrMissingStrategy)
}
