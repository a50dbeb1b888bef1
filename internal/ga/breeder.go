package ga

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
)

// Default rates used by the generation step
const (
	DefaultElitismRate   = 0.4
	DefaultSelectionRate = 0.4
)

// BreederConfig holds the rates of a generation step. Elitism and selection are
// independent: elites are always picked by truncation, the mating pool by the
// generation's selection strategy.
type BreederConfig struct {
	ElitismRate   float64
	SelectionRate float64
}

// Breeder turns a population into its next generation
type Breeder struct {
	cfg    BreederConfig
	scorer Scorer
	logger *slog.Logger
}

// NewBreeder creates a breeder. A nil scorer scores serially, a nil logger discards.
func NewBreeder(cfg BreederConfig, scorer Scorer, logger *slog.Logger) *Breeder {
	if scorer == nil {
		scorer = SerialScorer{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Breeder{cfg: cfg, scorer: scorer, logger: logger}
}

// Report describes one generation step. Scores refer to the population that was
// scored, i.e. the generation before the step.
type Report struct {
	Generation int
	Strategies string
	Fitness    string
	Selection  string
	Scores     []float64
	Champion   string
	BestScore  float64
	Elites     int
	Children   int
	Refilled   int
}

// Advance runs one generation: score, keep elites, select, pair, cross, mutate and
// refill with random individuals until the population has its original size.
// The population is replaced in place and its generation counter incremented.
// An empty population is left unchanged. On error the population is untouched.
func (b *Breeder) Advance(ctx context.Context, pop *Population, target Genome, s Strategies, rng *rand.Rand) (*Report, error) {
	n := pop.Size()
	if n == 0 {
		report := newReport(s)
		report.Generation = pop.Generation
		return report, nil
	}
	if len(target) == 0 {
		return nil, ErrEmptyTarget
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1. Score the current generation
	scores, err := b.scorer.Score(ctx, pop, target, s.Fitness)
	if err != nil {
		return nil, fmt.Errorf("score generation %d: %w", pop.Generation, err)
	}
	if len(scores) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrScoreCount, len(scores), n)
	}

	report := newReport(s)
	report.Scores = scores
	champion, best := pop.Best(scores)
	report.Champion = champion.String()
	report.BestScore = scores[best]

	next := make([]*Individual, 0, n)

	// 2. Keep elites
	for _, idx := range (TruncationSelector{}).Select(scores, b.cfg.ElitismRate, rng) {
		next = append(next, b.adopt(pop, pop.Individuals[idx].Clone()))
	}
	report.Elites = len(next)

	// 3-5. Select, pair and reproduce
	selected := s.Selection.Select(scores, b.cfg.SelectionRate, rng)
	var parents []Parents
	if len(selected) > 0 {
		parents = s.Pairing.Pair(selected, rng)
	}
	for _, pp := range parents {
		if len(next) == n {
			break
		}
		child := s.Crossover.Cross(pop.Individuals[pp.P1], pop.Individuals[pp.P2], rng)
		child = s.Mutation.Mutate(child, rng)
		next = append(next, b.adopt(pop, child))
		report.Children++
	}

	// 6. Refill
	for len(next) < n {
		next = append(next, pop.newIndividual(rng))
		report.Refilled++
	}

	// 7. Replace
	pop.Individuals = next
	pop.Generation++
	report.Generation = pop.Generation

	b.logger.Debug("generation advanced",
		slog.Int("generation", report.Generation),
		slog.String("strategies", report.Strategies),
		slog.Float64("best_score", report.BestScore),
		slog.Int("elites", report.Elites),
		slog.Int("children", report.Children),
		slog.Int("refilled", report.Refilled),
	)
	return report, nil
}

func newReport(s Strategies) *Report {
	report := &Report{Strategies: s.String(), Fitness: s.Fitness.String(), Selection: "none"}
	if s.Selection != nil {
		report.Selection = s.Selection.Name()
	}
	return report
}

// adopt stamps the population bounds on an individual entering the next generation
func (b *Breeder) adopt(pop *Population, ind *Individual) *Individual {
	ind.MinSize = pop.MinIndividualSize
	ind.MaxSize = pop.MaxIndividualSize
	return ind
}
