package ga

import (
	"math/rand"
)

// defaultCrossoverPoints is used by MultipointCrossover when Points is unset
const defaultCrossoverPoints = 2

// Crossover combines two parents into one child. The child inherits the size bounds of
// p1 and owns a fresh genome; neither parent is modified.
type Crossover interface {
	Cross(p1, p2 *Individual, rng *rand.Rand) *Individual
	Name() string
	isCrossover()
}

// childLength picks the length of one parent with equal probability
func childLength(p1, p2 *Individual, rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return p1.Size()
	}
	return p2.Size()
}

func newChild(p1 *Individual, genome Genome) *Individual {
	return &Individual{Genome: genome, MinSize: p1.MinSize, MaxSize: p1.MaxSize}
}

// UniformCrossover takes every gene of the common prefix from either parent with equal
// probability. Positions past the shorter parent come from a coin-chosen parent if it
// is long enough, otherwise from a fresh random gene.
type UniformCrossover struct{}

func (UniformCrossover) Name() string { return "uniform" }
func (UniformCrossover) isCrossover() {}

func (UniformCrossover) Cross(p1, p2 *Individual, rng *rand.Rand) *Individual {
	size := childLength(p1, p2, rng)
	common := min(p1.Size(), p2.Size())

	genome := make(Genome, size)
	for i := 0; i < common; i++ {
		if rng.Intn(2) == 0 {
			genome[i] = p1.Genome[i]
		} else {
			genome[i] = p2.Genome[i]
		}
	}

	for i := common; i < size; i++ {
		parent := p1
		if rng.Intn(2) == 1 {
			parent = p2
		}
		if i < parent.Size() {
			genome[i] = parent.Genome[i]
		} else {
			genome[i] = RandomGene(rng)
		}
	}

	return newChild(p1, genome)
}

// MultipointCrossover splits the common prefix into Points equal slices, copies each
// slice from a random parent and takes the remaining tail from the longer parent.
// Points is capped at the common length.
type MultipointCrossover struct {
	// Points is the number of slices; 0 means 2
	Points int
}

func (MultipointCrossover) Name() string { return "multipoint" }
func (MultipointCrossover) isCrossover() {}

func (mc MultipointCrossover) Cross(p1, p2 *Individual, rng *rand.Rand) *Individual {
	points := mc.Points
	if points <= 0 {
		points = defaultCrossoverPoints
	}

	size := childLength(p1, p2, rng)
	common := min(p1.Size(), p2.Size())
	// at most one slice per common gene
	points = min(points, max(common, 1))
	slice := common / points

	genome := make(Genome, size)
	start := 0
	for i := 0; i < points; i++ {
		parent := p1.Genome
		if rng.Intn(2) == 1 {
			parent = p2.Genome
		}
		copy(genome[start:start+slice], parent[start:start+slice])
		start += slice
	}

	longer := p2.Genome
	if p1.Size() > p2.Size() {
		longer = p1.Genome
	}
	copy(genome[start:], longer[start:size])

	return newChild(p1, genome)
}

// ProbabilisticCrossover draws a threshold p from U(0,1) for every position and a
// second uniform value u. When u >= p the gene comes from the primary source, otherwise
// from the secondary one. Within the common prefix the primary source is p1 and the
// secondary p2; past it the primary is whichever parent still has a gene there and the
// secondary is a fresh random gene.
type ProbabilisticCrossover struct{}

func (ProbabilisticCrossover) Name() string { return "probabilistic" }
func (ProbabilisticCrossover) isCrossover() {}

func (ProbabilisticCrossover) Cross(p1, p2 *Individual, rng *rand.Rand) *Individual {
	size := childLength(p1, p2, rng)

	thresholds := make([]float64, size)
	for i := range thresholds {
		thresholds[i] = rng.Float64()
	}

	genome := make(Genome, size)
	for i := 0; i < size; i++ {
		keep := rng.Float64() >= thresholds[i]
		switch {
		case i >= p1.Size():
			if keep {
				genome[i] = p2.Genome[i]
			} else {
				genome[i] = RandomGene(rng)
			}
		case i >= p2.Size():
			if keep {
				genome[i] = p1.Genome[i]
			} else {
				genome[i] = RandomGene(rng)
			}
		case keep:
			genome[i] = p1.Genome[i]
		default:
			genome[i] = p2.Genome[i]
		}
	}

	return newChild(p1, genome)
}
