package fitness

// ToSet returns the distinct bytes of s in first-seen order
func ToSet(s []byte) []byte {
	var seen [256]bool
	set := make([]byte, 0, len(s))
	for _, c := range s {
		if !seen[c] {
			seen[c] = true
			set = append(set, c)
		}
	}
	return set
}

// Union returns the distinct bytes of a followed by those of b not already present
func Union(a, b []byte) []byte {
	var seen [256]bool
	set := make([]byte, 0, len(a)+len(b))
	for _, s := range [][]byte{a, b} {
		for _, c := range s {
			if !seen[c] {
				seen[c] = true
				set = append(set, c)
			}
		}
	}
	return set
}

// Intersection returns the bytes present in both a and b in ascending order
func Intersection(a, b []byte) []byte {
	var inA, inB [256]bool
	for _, c := range a {
		inA[c] = true
	}
	for _, c := range b {
		inB[c] = true
	}

	set := make([]byte, 0, min(len(a), len(b)))
	for c := 0; c < 256; c++ {
		if inA[c] && inB[c] {
			set = append(set, byte(c))
		}
	}
	return set
}

// JaccardDistance compares the character sets of a and b. The length difference is
// added to the union so that strings with the same alphabet but different lengths
// do not score as identical.
func JaccardDistance(a, b []byte) float64 {
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}

	setA, setB := ToSet(a), ToSet(b)
	union := len(Union(setA, setB)) + diff
	if union == 0 {
		return 0
	}
	return 1 - float64(len(Intersection(setA, setB)))/float64(union)
}

// ngramSize is the default gram length; it shrinks when either string is shorter
const ngramSize = 2

// NGramDistance is one minus the Jaccard index over the bigram multisets of a and b.
// Every gram of b can be matched at most once.
func NGramDistance(a, b []byte) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	n := min(ngramSize, len(a), len(b))
	if n == 0 {
		return 1
	}

	countA := len(a) - n + 1
	countB := len(b) - n + 1
	used := make([]bool, countB)

	intersection := 0
	for i := 0; i < countA; i++ {
		for j := 0; j < countB; j++ {
			if !used[j] && string(a[i:i+n]) == string(b[j:j+n]) {
				used[j] = true
				intersection++
				break
			}
		}
	}

	union := countA + countB - intersection
	return 1 - float64(intersection)/float64(union)
}
