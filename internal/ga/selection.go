package ga

import (
	"math"
	"math/rand"
	"sort"
)

// rouletteEpsilon keeps individuals with the worst possible score selectable
const rouletteEpsilon = 1e-6

// Selector chooses a mating pool from a scored population. Scores are indexed like
// the population's individuals and lower is better. The returned values are indices
// into the population; the population itself is never modified.
type Selector interface {
	Select(scores []float64, rate float64, rng *rand.Rand) []int
	Name() string
	isSelector()
}

// selectionCount returns floor(rate * n) capped to [0, n]. The small bias absorbs
// float error such as 0.29*100 = 28.999999999999996.
func selectionCount(rate float64, n int) int {
	k := int(math.Floor(rate*float64(n) + 1e-9))
	if k < 0 {
		return 0
	}
	if k > n {
		return n
	}
	return k
}

// IndividualScore pairs a population index with its fitness score
type IndividualScore struct {
	Index int
	Score float64
}

// RankByScore returns every individual ordered by ascending score (best first)
func RankByScore(scores []float64) []IndividualScore {
	ranked := make([]IndividualScore, len(scores))
	for i, s := range scores {
		ranked[i] = IndividualScore{Index: i, Score: s}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score < ranked[b].Score
	})
	return ranked
}

// TruncationSelector keeps the best floor(rate*N) individuals
type TruncationSelector struct{}

func (TruncationSelector) Name() string { return "truncation" }
func (TruncationSelector) isSelector()  {}

// Select returns the best individuals, best first; nil when nothing is selected
func (TruncationSelector) Select(scores []float64, rate float64, _ *rand.Rand) []int {
	k := selectionCount(rate, len(scores))
	if k == 0 {
		return nil
	}

	ranked := RankByScore(scores)
	selected := make([]int, k)
	for i := 0; i < k; i++ {
		selected[i] = ranked[i].Index
	}
	return selected
}

// RankSelector draws without replacement with probability proportional to
// (N - rank) / N, where rank 0 is the best individual
type RankSelector struct{}

func (RankSelector) Name() string { return "rank" }
func (RankSelector) isSelector()  {}

// Select draws exactly floor(rate*N) distinct individuals. Each drawn candidate is
// removed from the wheel, so the loop always terminates.
func (RankSelector) Select(scores []float64, rate float64, rng *rand.Rand) []int {
	n := len(scores)
	k := selectionCount(rate, n)
	if k == 0 {
		return nil
	}

	ranked := RankByScore(scores)
	candidates := make([]int, n)
	weights := make([]float64, n)
	var total float64
	for rank, is := range ranked {
		candidates[rank] = is.Index
		weights[rank] = float64(n-rank) / float64(n)
		total += weights[rank]
	}

	selected := make([]int, 0, k)
	for len(selected) < k {
		spin := rng.Float64() * total
		pick := len(candidates) - 1
		var cum float64
		for i, w := range weights {
			cum += w
			if spin < cum {
				pick = i
				break
			}
		}

		selected = append(selected, candidates[pick])
		total -= weights[pick]
		candidates = append(candidates[:pick], candidates[pick+1:]...)
		weights = append(weights[:pick], weights[pick+1:]...)
	}
	return selected
}

// RouletteSelector draws with replacement, weighting each individual by
// 1 - score + epsilon
type RouletteSelector struct{}

func (RouletteSelector) Name() string { return "roulette" }
func (RouletteSelector) isSelector()  {}

// Select spins the wheel floor(rate*N) times
func (RouletteSelector) Select(scores []float64, rate float64, rng *rand.Rand) []int {
	n := len(scores)
	k := selectionCount(rate, n)
	if k == 0 {
		return nil
	}

	probs := make([]float64, n)
	var total float64
	for i, s := range scores {
		// scores above 1 would give negative weights
		probs[i] = math.Max(1-s+rouletteEpsilon, rouletteEpsilon)
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}

	selected := make([]int, k)
	for i := range selected {
		r := rng.Float64()
		j := 0
		for ; j < n-1; j++ {
			if r < probs[j] {
				break
			}
			r -= probs[j]
		}
		selected[i] = j
	}
	return selected
}

// TournamentSelector runs floor(rate*N) tournaments and keeps each winner
type TournamentSelector struct {
	// Size is the number of contestants per tournament; 0 means N/4
	Size int
}

func (TournamentSelector) Name() string { return "tournament" }
func (TournamentSelector) isSelector()  {}

// Select samples contestants uniformly with replacement; the lowest score wins
func (ts TournamentSelector) Select(scores []float64, rate float64, rng *rand.Rand) []int {
	n := len(scores)
	k := selectionCount(rate, n)
	if k == 0 {
		return nil
	}

	size := ts.Size
	if size <= 0 {
		size = n / 4
	}
	if size < 1 {
		size = 1
	}

	selected := make([]int, k)
	for i := range selected {
		winner := rng.Intn(n)
		for j := 1; j < size; j++ {
			candidate := rng.Intn(n)
			if scores[candidate] < scores[winner] {
				winner = candidate
			}
		}
		selected[i] = winner
	}
	return selected
}
