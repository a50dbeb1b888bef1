package ga

import (
	"math/rand"
)

// Individual is a genome plus the length bounds it must respect
type Individual struct {
	Genome  Genome
	MinSize int
	MaxSize int
}

// NewIndividual creates an individual with a random length in [minSize, maxSize]
// and random genes
func NewIndividual(minSize, maxSize int, rng *rand.Rand) *Individual {
	size := minSize + rng.Intn(maxSize-minSize+1)
	return &Individual{
		Genome:  RandomGenome(size, rng),
		MinSize: minSize,
		MaxSize: maxSize,
	}
}

// Size returns the current genome length
func (ind *Individual) Size() int {
	return len(ind.Genome)
}

// InBounds reports whether the genome length respects the individual's bounds
func (ind *Individual) InBounds() bool {
	return ind.MinSize <= len(ind.Genome) && len(ind.Genome) <= ind.MaxSize
}

// Clone creates a deep copy of an individual
func (ind *Individual) Clone() *Individual {
	return &Individual{
		Genome:  ind.Genome.Clone(),
		MinSize: ind.MinSize,
		MaxSize: ind.MaxSize,
	}
}

// String returns the genome as text
func (ind *Individual) String() string {
	return ind.Genome.String()
}
