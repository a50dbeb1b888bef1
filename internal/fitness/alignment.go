package fitness

// Smith-Waterman scoring
const (
	swMatch    = 2
	swMismatch = -1
	swGap      = -1
)

// SmithWatermanDistance finds the best local alignment score and maps it to
// 1 - best/(2*max(m,n)). Only one row of the score matrix is kept in memory.
func SmithWatermanDistance(a, b []byte) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}

	row := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		// diag holds row[j-1] from the previous row
		diag := 0
		for j := 1; j <= len(b); j++ {
			score := swMismatch
			if a[i-1] == b[j-1] {
				score = swMatch
			}
			upperLeft := diag
			diag = row[j]

			cell := max(upperLeft+score, 0)
			cell = max(cell, row[j]+swGap, row[j-1]+swGap)
			row[j] = cell

			if cell > best {
				best = cell
			}
		}
	}

	return 1 - float64(best)/float64(2*longest)
}

// LCSLength returns the length of the longest common subsequence of a and b
func LCSLength(a, b []byte) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// NLCSDistance is one minus the longest common subsequence normalized by the longer length
func NLCSDistance(a, b []byte) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(LCSLength(a, b))/float64(longest)
}
