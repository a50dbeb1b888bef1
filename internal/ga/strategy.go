package ga

import (
	"fmt"
	"math/rand"
	"strings"

	"findaword/internal/fitness"
)

// Params carries the optional per-strategy parameters. Zero values select each
// strategy's default.
type Params struct {
	TournamentSize  int
	CrossoverPoints int
	MutationRate    float64
	SwapRate        float64
}

// Strategies holds one variant of every strategy kind used by a generation
type Strategies struct {
	Fitness   fitness.Metric
	Selection Selector
	Pairing   Pairer
	Crossover Crossover
	Mutation  Mutator
}

// String summarizes the strategy names, e.g. "hamming/truncation/random/uniform/swap"
func (s Strategies) String() string {
	name := func(n interface{ Name() string }) string {
		if n == nil {
			return "none"
		}
		return n.Name()
	}
	return strings.Join([]string{
		s.Fitness.String(), name(s.Selection), name(s.Pairing), name(s.Crossover), name(s.Mutation),
	}, "/")
}

func (s Strategies) validate() error {
	if s.Selection == nil || s.Pairing == nil || s.Crossover == nil || s.Mutation == nil {
		return fmt.Errorf("%w: %s", ErrMissingStrategy, s)
	}
	return nil
}

// The registries are ordered slices so that random picks are reproducible for a seed
var (
	selectors = []struct {
		name string
		new  func(Params) Selector
	}{
		{"truncation", func(Params) Selector { return TruncationSelector{} }},
		{"roulette", func(Params) Selector { return RouletteSelector{} }},
		{"tournament", func(p Params) Selector { return TournamentSelector{Size: p.TournamentSize} }},
		{"rank", func(Params) Selector { return RankSelector{} }},
	}
	pairers = []struct {
		name string
		new  func(Params) Pairer
	}{
		{"random", func(Params) Pairer { return RandomPairing{} }},
		{"consecutive", func(Params) Pairer { return ConsecutivePairing{} }},
		{"non_sequential", func(Params) Pairer { return NonSequentialPairing{} }},
	}
	crossovers = []struct {
		name string
		new  func(Params) Crossover
	}{
		{"uniform", func(Params) Crossover { return UniformCrossover{} }},
		{"multipoint", func(p Params) Crossover { return MultipointCrossover{Points: p.CrossoverPoints} }},
		{"probabilistic", func(Params) Crossover { return ProbabilisticCrossover{} }},
	}
	mutators = []struct {
		name string
		new  func(Params) Mutator
	}{
		{"random", func(p Params) Mutator { return RandomReplaceMutation{Rate: p.MutationRate} }},
		{"inversion", func(Params) Mutator { return InversionMutation{} }},
		{"swap", func(p Params) Mutator { return SwapMutation{Rate: p.SwapRate} }},
		{"insertion", func(Params) Mutator { return InsertionMutation{} }},
		{"deletion", func(Params) Mutator { return DeletionMutation{} }},
	}
)

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewSelector returns the selection strategy with the given name
func NewSelector(name string, p Params) (Selector, error) {
	for _, s := range selectors {
		if s.name == normalize(name) {
			return s.new(p), nil
		}
	}
	return nil, fmt.Errorf("%w: selection %q", ErrUnknownStrategy, name)
}

// NewPairer returns the pairing strategy with the given name
func NewPairer(name string, p Params) (Pairer, error) {
	for _, s := range pairers {
		if s.name == normalize(name) {
			return s.new(p), nil
		}
	}
	return nil, fmt.Errorf("%w: pairing %q", ErrUnknownStrategy, name)
}

// NewCrossover returns the crossover strategy with the given name
func NewCrossover(name string, p Params) (Crossover, error) {
	for _, s := range crossovers {
		if s.name == normalize(name) {
			return s.new(p), nil
		}
	}
	return nil, fmt.Errorf("%w: crossover %q", ErrUnknownStrategy, name)
}

// NewMutator returns the mutation strategy with the given name
func NewMutator(name string, p Params) (Mutator, error) {
	for _, s := range mutators {
		if s.name == normalize(name) {
			return s.new(p), nil
		}
	}
	return nil, fmt.Errorf("%w: mutation %q", ErrUnknownStrategy, name)
}

// SelectorNames lists the registered selection strategies
func SelectorNames() []string {
	names := make([]string, len(selectors))
	for i, s := range selectors {
		names[i] = s.name
	}
	return names
}

// PairerNames lists the registered pairing strategies
func PairerNames() []string {
	names := make([]string, len(pairers))
	for i, s := range pairers {
		names[i] = s.name
	}
	return names
}

// CrossoverNames lists the registered crossover strategies
func CrossoverNames() []string {
	names := make([]string, len(crossovers))
	for i, s := range crossovers {
		names[i] = s.name
	}
	return names
}

// MutatorNames lists the registered mutation strategies
func MutatorNames() []string {
	names := make([]string, len(mutators))
	for i, s := range mutators {
		names[i] = s.name
	}
	return names
}

// RandomStrategies picks every strategy uniformly at random
func RandomStrategies(p Params, rng *rand.Rand) Strategies {
	metrics := fitness.All()
	return Strategies{
		Fitness:   metrics[rng.Intn(len(metrics))],
		Selection: selectors[rng.Intn(len(selectors))].new(p),
		Pairing:   pairers[rng.Intn(len(pairers))].new(p),
		Crossover: crossovers[rng.Intn(len(crossovers))].new(p),
		Mutation:  mutators[rng.Intn(len(mutators))].new(p),
	}
}
