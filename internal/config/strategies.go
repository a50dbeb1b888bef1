package config

import (
	"fmt"
	"math/rand"
	"strings"

	"findaword/internal/fitness"
	"findaword/internal/ga"
)

// Resolver produces the strategies of each generation from the configured names.
// Fixed names are resolved once; "random" kinds are re-rolled on every call.
type Resolver struct {
	params ga.Params
	fixed  ga.Strategies

	randomFitness   bool
	randomSelection bool
	randomPairing   bool
	randomCrossover bool
	randomMutation  bool
}

func isRandom(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), Random)
}

// Resolver builds the per-generation strategy resolver
func (c *Config) Resolver() (*Resolver, error) {
	r := &Resolver{params: c.GAParams()}
	s := c.Strategies
	var err error

	if r.randomFitness = isRandom(s.Fitness); !r.randomFitness {
		if r.fixed.Fitness, err = fitness.ParseMetric(s.Fitness); err != nil {
			return nil, fmt.Errorf("strategies.fitness: %w", err)
		}
	}
	if r.randomSelection = isRandom(s.Selection); !r.randomSelection {
		if r.fixed.Selection, err = ga.NewSelector(s.Selection, r.params); err != nil {
			return nil, fmt.Errorf("strategies.selection: %w", err)
		}
	}
	if r.randomPairing = isRandom(s.Pairing); !r.randomPairing {
		if r.fixed.Pairing, err = ga.NewPairer(s.Pairing, r.params); err != nil {
			return nil, fmt.Errorf("strategies.pairing: %w", err)
		}
	}
	if r.randomCrossover = isRandom(s.Crossover); !r.randomCrossover {
		if r.fixed.Crossover, err = ga.NewCrossover(s.Crossover, r.params); err != nil {
			return nil, fmt.Errorf("strategies.crossover: %w", err)
		}
	}
	if r.randomMutation = isRandom(s.Mutation); !r.randomMutation {
		if r.fixed.Mutation, err = ga.NewMutator(s.Mutation, r.params); err != nil {
			return nil, fmt.Errorf("strategies.mutation: %w", err)
		}
	}
	return r, nil
}

// Next returns the strategies for the coming generation
func (r *Resolver) Next(rng *rand.Rand) ga.Strategies {
	s := r.fixed
	roll := ga.RandomStrategies(r.params, rng)
	if r.randomFitness {
		s.Fitness = roll.Fitness
	}
	if r.randomSelection {
		s.Selection = roll.Selection
	}
	if r.randomPairing {
		s.Pairing = roll.Pairing
	}
	if r.randomCrossover {
		s.Crossover = roll.Crossover
	}
	if r.randomMutation {
		s.Mutation = roll.Mutation
	}
	return s
}
