package ga

import (
	"context"
	"fmt"
	"math/rand"

	"findaword/internal/fitness"
)

// Population is a fixed-size collection of individuals plus a generation counter
type Population struct {
	Individuals       []*Individual
	MinIndividualSize int
	MaxIndividualSize int
	Generation        int
}

// NewPopulation creates a population of random individuals whose lengths lie in
// [minSize, maxSize]
func NewPopulation(size, minSize, maxSize int, rng *rand.Rand) (*Population, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if minSize < 1 || minSize > maxSize {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, minSize, maxSize)
	}

	p := &Population{
		Individuals:       make([]*Individual, size),
		MinIndividualSize: minSize,
		MaxIndividualSize: maxSize,
	}
	for i := range p.Individuals {
		p.Individuals[i] = NewIndividual(minSize, maxSize, rng)
	}
	return p, nil
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.Individuals)
}

// Best returns the individual with the lowest score and its index
func (p *Population) Best(scores []float64) (*Individual, int) {
	if len(p.Individuals) == 0 || len(scores) != len(p.Individuals) {
		return nil, -1
	}
	best := 0
	for i, s := range scores[1:] {
		if s < scores[best] {
			best = i + 1
		}
	}
	return p.Individuals[best], best
}

// newIndividual creates a random member respecting the population bounds
func (p *Population) newIndividual(rng *rand.Rand) *Individual {
	return NewIndividual(p.MinIndividualSize, p.MaxIndividualSize, rng)
}

// Scorer computes one fitness score per individual of a population
type Scorer interface {
	Score(ctx context.Context, pop *Population, target Genome, metric fitness.Metric) ([]float64, error)
}

// SerialScorer scores individuals one after the other on the calling goroutine
type SerialScorer struct{}

func (SerialScorer) Score(ctx context.Context, pop *Population, target Genome, metric fitness.Metric) ([]float64, error) {
	scores := make([]float64, len(pop.Individuals))
	for i, ind := range pop.Individuals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scores[i] = metric.Score(ind.Genome, target)
	}
	return scores, nil
}
