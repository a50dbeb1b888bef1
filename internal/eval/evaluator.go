package eval

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"findaword/internal/fitness"
	"findaword/internal/ga"
)

// Scorer evaluates a population's fitness with a bounded number of workers.
// Each fitness call only reads its own genome and the shared target, so individuals
// are scored independently without locking.
type Scorer struct {
	workers int
}

// NewScorer creates a scorer; workers <= 0 uses one worker per CPU
func NewScorer(workers int) *Scorer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scorer{workers: workers}
}

// Workers returns the concurrency limit
func (s *Scorer) Workers() int {
	return s.workers
}

// Score returns one score per individual, in population order
func (s *Scorer) Score(ctx context.Context, pop *ga.Population, target ga.Genome, metric fitness.Metric) ([]float64, error) {
	scores := make([]float64, len(pop.Individuals))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, ind := range pop.Individuals {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = metric.Score(ind.Genome, target)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
