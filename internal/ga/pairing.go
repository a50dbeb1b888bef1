package ga

import (
	"math/rand"
)

// Parents holds two population indices chosen to mate. Indices are only valid for the
// generation that produced them.
type Parents struct {
	P1 int
	P2 int
}

// Pairer groups a mating pool into floor(len(selected)/2) parent pairs
type Pairer interface {
	Pair(selected []int, rng *rand.Rand) []Parents
	Name() string
	isPairer()
}

// RandomPairing pairs pool positions drawn at random, each position used once
type RandomPairing struct{}

func (RandomPairing) Name() string { return "random" }
func (RandomPairing) isPairer()    {}

func (RandomPairing) Pair(selected []int, rng *rand.Rand) []Parents {
	if len(selected) < 2 {
		return nil
	}

	// a random permutation is the same as drawing unused positions one at a time
	order := rng.Perm(len(selected))
	parents := make([]Parents, 0, len(selected)/2)
	for i := 0; i+1 < len(order); i += 2 {
		parents = append(parents, Parents{P1: selected[order[i]], P2: selected[order[i+1]]})
	}
	return parents
}

// ConsecutivePairing pairs positions (0,1), (2,3), ...
type ConsecutivePairing struct{}

func (ConsecutivePairing) Name() string { return "consecutive" }
func (ConsecutivePairing) isPairer()    {}

func (ConsecutivePairing) Pair(selected []int, _ *rand.Rand) []Parents {
	if len(selected) < 2 {
		return nil
	}

	parents := make([]Parents, 0, len(selected)/2)
	for i := 0; i+1 < len(selected); i += 2 {
		parents = append(parents, Parents{P1: selected[i], P2: selected[i+1]})
	}
	return parents
}

// NonSequentialPairing pairs position i with i+2, stepping by two, and closes with the
// pair (n-3, n-1). For [5 2 7 9] this yields (5,7) and (2,9).
type NonSequentialPairing struct{}

func (NonSequentialPairing) Name() string { return "non_sequential" }
func (NonSequentialPairing) isPairer()    {}

func (NonSequentialPairing) Pair(selected []int, rng *rand.Rand) []Parents {
	n := len(selected)
	if n < 3 {
		// no room to skip a position
		return ConsecutivePairing{}.Pair(selected, rng)
	}

	parents := make([]Parents, 0, n/2)
	for i := 0; i < n-3; i += 2 {
		parents = append(parents, Parents{P1: selected[i], P2: selected[i+2]})
	}
	parents = append(parents, Parents{P1: selected[n-3], P2: selected[n-1]})
	return parents
}
