package ga

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedGenes(g Genome) string {
	c := g.Clone()
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
	return string(c)
}

func TestMutatorsDoNotModifyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	mutators := []Mutator{
		RandomReplaceMutation{Rate: 0.5}, InversionMutation{}, SwapMutation{Rate: 0.5},
		InsertionMutation{}, DeletionMutation{},
	}
	for _, m := range mutators {
		ind := &Individual{Genome: Genome("abcdefghij"), MinSize: 2, MaxSize: 20}
		out := m.Mutate(ind, rng)
		assert.Equal(t, "abcdefghij", ind.String(), m.Name())
		assert.True(t, out.InBounds(), m.Name())
		assert.Equal(t, 2, out.MinSize)
		assert.Equal(t, 20, out.MaxSize)
	}
}

func TestRandomReplaceMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	ind := &Individual{Genome: Genome("aaaaaaaaaa"), MinSize: 1, MaxSize: 10}
	for i := 0; i < 100; i++ {
		out := RandomReplaceMutation{}.Mutate(ind, rng)
		diff := 0
		for j := range out.Genome {
			if out.Genome[j] != 'a' {
				diff++
			}
		}
		// default rate replaces exactly one position, possibly with the same gene
		assert.LessOrEqual(t, diff, 1)
		assert.Equal(t, 10, out.Size())
	}

	empty := &Individual{MinSize: 0, MaxSize: 4}
	assert.Equal(t, 0, RandomReplaceMutation{}.Mutate(empty, rng).Size())
}

func TestInversionMutationPreservesGenes(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	for _, s := range []string{"a", "ab", "abc", "abcdefg", "abcdefgh"} {
		ind := &Individual{Genome: Genome(s), MinSize: 1, MaxSize: 10}
		for i := 0; i < 50; i++ {
			out := InversionMutation{}.Mutate(ind, rng)
			assert.Equal(t, sortedGenes(ind.Genome), sortedGenes(out.Genome))
		}
	}

	// odd lengths always reverse a range of at least two genes
	ind := &Individual{Genome: Genome("abc"), MinSize: 1, MaxSize: 10}
	for i := 0; i < 50; i++ {
		assert.NotEqual(t, "abc", InversionMutation{}.Mutate(ind, rng).String())
	}
}

func TestSwapMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	ind := &Individual{Genome: Genome("abcdefghij"), MinSize: 1, MaxSize: 10}
	out := SwapMutation{}.Mutate(ind, rng)
	assert.Equal(t, sortedGenes(ind.Genome), sortedGenes(out.Genome))

	// a single swap of distinct genes always changes the genome
	out = SwapMutation{Rate: 0.1}.Mutate(ind, rng)
	assert.Equal(t, sortedGenes(ind.Genome), sortedGenes(out.Genome))
	assert.NotEqual(t, ind.String(), out.String())

	single := &Individual{Genome: Genome("a"), MinSize: 1, MaxSize: 10}
	assert.Equal(t, "a", SwapMutation{Rate: 1}.Mutate(single, rng).String())
}

func TestInsertionMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	ind := &Individual{Genome: Genome("abc"), MinSize: 1, MaxSize: 5}
	out := InsertionMutation{}.Mutate(ind, rng)
	require.Equal(t, 4, out.Size())

	// size+1 would reach MaxSize
	again := InsertionMutation{}.Mutate(out, rng)
	assert.Equal(t, out.String(), again.String())

	for i := 0; i < 200; i++ {
		ind = InsertionMutation{}.Mutate(ind, rng)
		require.LessOrEqual(t, ind.Size(), ind.MaxSize)
	}
}

func TestDeletionMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	ind := &Individual{Genome: Genome("abcd"), MinSize: 2, MaxSize: 5}
	out := DeletionMutation{}.Mutate(ind, rng)
	require.Equal(t, 3, out.Size())

	for i := 0; i < 10; i++ {
		out = DeletionMutation{}.Mutate(out, rng)
		require.GreaterOrEqual(t, out.Size(), out.MinSize)
	}
	assert.Equal(t, 2, out.Size())
}
