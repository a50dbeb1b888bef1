package fitness

import "math"

// CosineDistance treats both strings as zero-padded vectors of character codes and
// maps their cosine similarity into [0, 1]. A zero vector scores 1.
func CosineDistance(a, b []byte) float64 {
	var dot, sumA, sumB float64
	for i := 0; i < max(len(a), len(b)); i++ {
		var x, y float64
		if i < len(a) {
			x = float64(a[i])
		}
		if i < len(b) {
			y = float64(b[i])
		}
		dot += x * y
		sumA += x * x
		sumB += y * y
	}

	if sumA == 0 || sumB == 0 {
		return 1
	}
	sim := dot / (math.Sqrt(sumA) * math.Sqrt(sumB))
	return 1 - (sim+1)/2
}

// PearsonDistance computes the Pearson correlation of the character codes and maps it
// into [0, 1]. The tail of the longer string only contributes to its own variance.
// When either variance is zero the correlation is taken as 0, giving 0.5.
func PearsonDistance(a, b []byte) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	meanA, meanB := mean(a), mean(b)
	var num, varA, varB float64
	for i := 0; i < max(len(a), len(b)); i++ {
		var x, y float64
		if i < len(a) {
			x = float64(a[i]) - meanA
			varA += x * x
		}
		if i < len(b) {
			y = float64(b[i]) - meanB
			varB += y * y
		}
		if i < len(a) && i < len(b) {
			num += x * y
		}
	}

	var r float64
	if varA != 0 && varB != 0 {
		r = num / (math.Sqrt(varA) * math.Sqrt(varB))
	}
	return 1 - (r+1)/2
}

func mean(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, c := range s {
		sum += float64(c)
	}
	return sum / float64(len(s))
}
