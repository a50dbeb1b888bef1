package ga

import (
	"math/rand"
)

// Inclusive range of character codes a gene can take
const (
	MinCode Gene = 32
	MaxCode Gene = 127
)

// Gene is a single character code of a genome
type Gene = byte

// Genome is an ordered sequence of genes
type Genome []Gene

// RandomGene draws a gene uniformly from [MinCode, MaxCode]
func RandomGene(rng *rand.Rand) Gene {
	return MinCode + Gene(rng.Intn(int(MaxCode-MinCode)+1))
}

// RandomGenome creates a genome of the given length filled with random genes
func RandomGenome(size int, rng *rand.Rand) Genome {
	g := make(Genome, size)
	for i := range g {
		g[i] = RandomGene(rng)
	}
	return g
}

// GenomeFromString converts a target string into a genome
func GenomeFromString(s string) Genome {
	return Genome(s)
}

// Clone makes a copy of a genome
func (g Genome) Clone() Genome {
	dst := make(Genome, len(g))
	copy(dst, g)
	return dst
}

// String renders the genome as text
func (g Genome) String() string {
	return string(g)
}
