// Package fitness implements the string similarity metrics used to score genomes
// against a target. Every metric returns a distance: 0 is a perfect match and larger
// values are worse. Inputs are treated as raw byte strings.
package fitness

import (
	"fmt"
	"strings"
)

// Metric identifies one of the fitness functions
type Metric int

const (
	Hamming Metric = iota
	Levenshtein
	SmithWaterman
	Jaccard
	NLCS
	Cosine
	NGram
	Manhattan
	Pearson
)

var metricNames = [...]string{
	Hamming:       "hamming",
	Levenshtein:   "levenshtein",
	SmithWaterman: "smith_waterman",
	Jaccard:       "jaccard",
	NLCS:          "nlcs",
	Cosine:        "cosine",
	NGram:         "ngram",
	Manhattan:     "manhattan",
	Pearson:       "pearson",
}

// All returns every metric in declaration order
func All() []Metric {
	metrics := make([]Metric, len(metricNames))
	for i := range metrics {
		metrics[i] = Metric(i)
	}
	return metrics
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return "unknown"
	}
	return metricNames[m]
}

// ParseMetric resolves a metric from its name
func ParseMetric(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range metricNames {
		if n == name {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fitness metric %q", name)
}

// Score computes the distance between genome and target with the metric
func (m Metric) Score(genome, target []byte) float64 {
	switch m {
	case Hamming:
		return ModifiedHamming(genome, target)
	case Levenshtein:
		return LevenshteinDistance(genome, target)
	case SmithWaterman:
		return SmithWatermanDistance(genome, target)
	case Jaccard:
		return JaccardDistance(genome, target)
	case NLCS:
		return NLCSDistance(genome, target)
	case Cosine:
		return CosineDistance(genome, target)
	case NGram:
		return NGramDistance(genome, target)
	case Manhattan:
		return ManhattanDistance(genome, target)
	case Pearson:
		return PearsonDistance(genome, target)
	default:
		panic(fmt.Sprintf("fitness: unknown metric %d", int(m)))
	}
}
