package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findaword/internal/fitness"
	"findaword/internal/ga"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(1337), cfg.Seed)
	assert.Equal(t, "Je vais bien, tu vas bien !", cfg.Target)
	assert.Equal(t, 1024, cfg.Population.Size)
	assert.Equal(t, 2, cfg.Population.MinIndividualSize)
	assert.Equal(t, 50, cfg.Population.MaxIndividualSize)
	assert.Equal(t, ga.BreederConfig{ElitismRate: 0.4, SelectionRate: 0.4}, cfg.BreederConfig())
	assert.Equal(t, Random, cfg.Strategies.Fitness)
	assert.Equal(t, "hamming", cfg.StopMetric)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`
seed: 7
target: "hello"
population:
  size: 64
  min_individual_size: 3
  max_individual_size: 9
ga:
  elitism_rate: 0.3
  selection_rate: 0.5
  max_generations: 500
strategies:
  fitness: levenshtein
  selection: tournament
  pairing: consecutive
  crossover: multipoint
  mutation: random
params:
  tournament_size: 5
  crossover_points: 3
logging:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "hello", cfg.Target)
	assert.Equal(t, 64, cfg.Population.Size)
	assert.Equal(t, ga.BreederConfig{ElitismRate: 0.3, SelectionRate: 0.5}, cfg.BreederConfig())
	assert.Equal(t, 100, cfg.Logging.Every)

	r, err := cfg.Resolver()
	require.NoError(t, err)
	s := r.Next(rand.New(rand.NewSource(1)))
	assert.Equal(t, fitness.Levenshtein, s.Fitness)
	assert.Equal(t, ga.TournamentSelector{Size: 5}, s.Selection)
	assert.Equal(t, ga.ConsecutivePairing{}, s.Pairing)
	assert.Equal(t, ga.MultipointCrossover{Points: 3}, s.Crossover)
	assert.Equal(t, ga.RandomReplaceMutation{}, s.Mutation)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bounds":      "population: {min_individual_size: 10, max_individual_size: 4}",
		"rate":        "ga: {elitism_rate: 1.5}",
		"level":       "logging: {level: loud}",
		"strategy":    "strategies: {crossover: twopoint}",
		"stop metric": "stop_metric: euclid",
		"yaml":        "population: [",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestResolverRerollsRandomKinds(t *testing.T) {
	cfg := Default()
	cfg.Strategies.Selection = "truncation"
	r, err := cfg.Resolver()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	fitnesses := map[fitness.Metric]bool{}
	for i := 0; i < 200; i++ {
		s := r.Next(rng)
		assert.Equal(t, ga.TruncationSelector{}, s.Selection)
		fitnesses[s.Fitness] = true
	}
	assert.Len(t, fitnesses, len(fitness.All()))
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "findaword.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Target, cfg.Target)
	assert.Equal(t, 2, cfg.Params.CrossoverPoints)
	assert.Equal(t, "artifacts/champion.json", cfg.Logging.Champion)
}

func TestExplicitZeroRatesAreKept(t *testing.T) {
	cfg, err := Parse([]byte(`
target: "hello"
ga:
  elitism_rate: 0
  selection_rate: 0
`))
	require.NoError(t, err)
	assert.Equal(t, ga.BreederConfig{ElitismRate: 0, SelectionRate: 0}, cfg.BreederConfig())

	cfg, err = Parse([]byte(`target: "hello"`))
	require.NoError(t, err)
	assert.Equal(t, ga.BreederConfig{ElitismRate: 0.4, SelectionRate: 0.4}, cfg.BreederConfig())

	_, err = Parse([]byte(`
target: "hello"
ga:
  elitism_rate: 1.5
`))
	assert.Error(t, err)
}
