package eval

import "math"

// Summary holds statistics over one generation's scores
type Summary struct {
	Best      float64
	Worst     float64
	Mean      float64
	Std       float64
	BestIndex int
	Count     int
}

// Summarize computes statistics from a slice of scores (lower is better)
func Summarize(scores []float64) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{BestIndex: -1}
	}

	s := Summary{Best: scores[0], Worst: scores[0], Count: n}
	var sum float64
	for i, v := range scores {
		sum += v
		if v < s.Best {
			s.Best = v
			s.BestIndex = i
		}
		if v > s.Worst {
			s.Worst = v
		}
	}
	s.Mean = sum / float64(n)

	// Compute standard deviation
	var variance float64
	for _, v := range scores {
		diff := v - s.Mean
		variance += diff * diff
	}
	s.Std = math.Sqrt(variance / float64(n))

	return s
}
