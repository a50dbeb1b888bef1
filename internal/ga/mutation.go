package ga

import (
	"math/rand"
)

// defaultSwapRate is the fraction of positions swapped when SwapMutation.Rate is unset
const defaultSwapRate = 0.2

// Mutator perturbs one individual. It returns a new individual and leaves the input
// untouched; the size bounds are carried over unchanged.
type Mutator interface {
	Mutate(ind *Individual, rng *rand.Rand) *Individual
	Name() string
	isMutator()
}

// RandomReplaceMutation replaces floor(Rate*size) random positions with fresh genes
type RandomReplaceMutation struct {
	// Rate defaults to 1/size, i.e. one replacement
	Rate float64
}

func (RandomReplaceMutation) Name() string { return "random" }
func (RandomReplaceMutation) isMutator()   {}

func (m RandomReplaceMutation) Mutate(ind *Individual, rng *rand.Rand) *Individual {
	c := ind.Clone()
	size := c.Size()
	if size == 0 {
		return c
	}

	rate := m.Rate
	if rate <= 0 {
		rate = 1 / float64(size)
	}
	n := selectionCount(rate, size)
	for i := 0; i < n; i++ {
		c.Genome[rng.Intn(size)] = RandomGene(rng)
	}
	return c
}

// InversionMutation reverses the genes between two positions i <= j. Odd lengths draw
// i in [0, size-2] and j in [i+1, size-1]; even lengths draw i in [0, size-1] and
// j in [i, size-1].
type InversionMutation struct{}

func (InversionMutation) Name() string { return "inversion" }
func (InversionMutation) isMutator()   {}

func (InversionMutation) Mutate(ind *Individual, rng *rand.Rand) *Individual {
	c := ind.Clone()
	size := c.Size()
	if size < 2 {
		return c
	}

	var i, j int
	if size%2 != 0 {
		i = rng.Intn(size - 1)
		j = i + 1 + rng.Intn(size-i-1)
	} else {
		i = rng.Intn(size)
		j = i + rng.Intn(size-i)
	}

	for ; i < j; i, j = i+1, j-1 {
		c.Genome[i], c.Genome[j] = c.Genome[j], c.Genome[i]
	}
	return c
}

// SwapMutation performs floor(Rate*size) swaps of two distinct random positions
type SwapMutation struct {
	// Rate defaults to 0.2
	Rate float64
}

func (SwapMutation) Name() string { return "swap" }
func (SwapMutation) isMutator()   {}

func (m SwapMutation) Mutate(ind *Individual, rng *rand.Rand) *Individual {
	c := ind.Clone()
	size := c.Size()
	if size < 2 {
		return c
	}

	rate := m.Rate
	if rate <= 0 {
		rate = defaultSwapRate
	}
	n := selectionCount(rate, size)
	for k := 0; k < n; k++ {
		i := rng.Intn(size)
		j := rng.Intn(size - 1)
		if j >= i {
			j++
		}
		c.Genome[i], c.Genome[j] = c.Genome[j], c.Genome[i]
	}
	return c
}

// InsertionMutation inserts one random gene at a random position when size+1 stays
// below MaxSize; otherwise the individual is returned unchanged
type InsertionMutation struct{}

func (InsertionMutation) Name() string { return "insertion" }
func (InsertionMutation) isMutator()   {}

func (InsertionMutation) Mutate(ind *Individual, rng *rand.Rand) *Individual {
	size := ind.Size()
	if size+1 >= ind.MaxSize {
		return ind.Clone()
	}

	at := rng.Intn(size + 1)
	genome := make(Genome, 0, size+1)
	genome = append(genome, ind.Genome[:at]...)
	genome = append(genome, RandomGene(rng))
	genome = append(genome, ind.Genome[at:]...)

	return &Individual{Genome: genome, MinSize: ind.MinSize, MaxSize: ind.MaxSize}
}

// DeletionMutation removes the gene at a random position when size-1 stays at or
// above MinSize; otherwise the individual is returned unchanged
type DeletionMutation struct{}

func (DeletionMutation) Name() string { return "deletion" }
func (DeletionMutation) isMutator()   {}

func (DeletionMutation) Mutate(ind *Individual, rng *rand.Rand) *Individual {
	size := ind.Size()
	if size-1 < ind.MinSize || size == 0 {
		return ind.Clone()
	}

	at := rng.Intn(size)
	genome := make(Genome, 0, size-1)
	genome = append(genome, ind.Genome[:at]...)
	genome = append(genome, ind.Genome[at+1:]...)

	return &Individual{Genome: genome, MinSize: ind.MinSize, MaxSize: ind.MaxSize}
}
