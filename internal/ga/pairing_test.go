package ga

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsecutivePairing(t *testing.T) {
	got := ConsecutivePairing{}.Pair([]int{5, 2, 7, 9}, nil)
	assert.Equal(t, []Parents{{5, 2}, {7, 9}}, got)

	got = ConsecutivePairing{}.Pair([]int{5, 2, 7}, nil)
	assert.Equal(t, []Parents{{5, 2}}, got)
	assert.Nil(t, ConsecutivePairing{}.Pair([]int{5}, nil))
}

func TestNonSequentialPairing(t *testing.T) {
	got := NonSequentialPairing{}.Pair([]int{5, 2, 7, 9}, nil)
	assert.Equal(t, []Parents{{5, 7}, {2, 9}}, got)

	got = NonSequentialPairing{}.Pair([]int{1, 2, 3}, nil)
	assert.Equal(t, []Parents{{1, 3}}, got)

	got = NonSequentialPairing{}.Pair([]int{4, 8}, nil)
	assert.Equal(t, []Parents{{4, 8}}, got)

	for n := 0; n < 12; n++ {
		selected := make([]int, n)
		for i := range selected {
			selected[i] = i
		}
		assert.Len(t, NonSequentialPairing{}.Pair(selected, nil), n/2, "n=%d", n)
	}
}

func TestRandomPairingUsesEveryPositionOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	selected := []int{10, 11, 12, 13, 14, 15, 16}
	input := append([]int(nil), selected...)

	got := RandomPairing{}.Pair(selected, rng)
	require.Len(t, got, 3)

	var used []int
	for _, p := range got {
		assert.NotEqual(t, p.P1, p.P2)
		used = append(used, p.P1, p.P2)
	}
	sort.Ints(used)
	for i := 1; i < len(used); i++ {
		assert.NotEqual(t, used[i-1], used[i])
	}
	for _, u := range used {
		assert.Contains(t, selected, u)
	}
	assert.Equal(t, input, selected, "input must not be modified")

	assert.Nil(t, RandomPairing{}.Pair([]int{1}, rng))
}
