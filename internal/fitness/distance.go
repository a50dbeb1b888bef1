package fitness

// maxCharDistance is the largest distance modeled between two characters
const maxCharDistance = 96

// ModifiedHamming counts position-wise mismatches over the common prefix plus the
// length difference, normalized by the longer length
func ModifiedHamming(a, b []byte) float64 {
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return 0
	}

	sum := longer - shorter
	for i := 0; i < shorter; i++ {
		if a[i] != b[i] {
			sum++
		}
	}
	return float64(sum) / float64(longer)
}

// LevenshteinDistance computes the edit distance with a full (m+1)x(n+1) table and
// normalizes it by the longer length
func LevenshteinDistance(a, b []byte) float64 {
	m, n := len(a), len(b)
	if m == 0 && n == 0 {
		return 0
	}

	dist := make([][]int, m+1)
	for i := range dist {
		dist[i] = make([]int, n+1)
		dist[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dist[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			dist[i][j] = min(dist[i-1][j]+1, dist[i][j-1]+1, dist[i-1][j-1]+cost)
		}
	}

	return float64(dist[m][n]) / float64(max(m, n))
}

// ManhattanDistance sums absolute code differences over the common prefix and charges
// the maximum character distance for every missing position
func ManhattanDistance(a, b []byte) float64 {
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return 0
	}

	var sum int
	for i := 0; i < shorter; i++ {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		// bytes outside the printable range would otherwise push the score above 1
		sum += min(d, maxCharDistance)
	}
	sum += (longer - shorter) * maxCharDistance

	return float64(sum) / float64(longer*maxCharDistance)
}
