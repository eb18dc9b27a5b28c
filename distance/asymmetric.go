package distance

import "github.com/cgmlst/grapetree/profile"

// Asymmetric builds the N x N directional distance matrix used by the
// arborescence builder (Component C). For ordered pair (i -> j), missing
// data in the "from" profile is only half-penalized: the asymmetry biases
// arborescence construction toward well-characterized roots rather than
// incomplete profiles.
//
//	D[i][j] = differences + 0.5 * missing_in_from
func Asymmetric(data *profile.Data) Matrix {
	n := data.NStrains()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			rows[i][j] = directional(data.Profiles[i], data.Profiles[j])
		}
	}

	return newMatrix(rows, false)
}

// directional computes the from -> to directional distance: an ordinary
// disagreement count, plus a half-weight penalty for every locus where the
// "from" profile itself is missing.
func directional(from, to []int) float64 {
	var differences, missingInFrom int

	for k := range from {
		a, b := from[k], to[k]
		switch {
		case profile.Missing(a):
			missingInFrom++
		case !profile.Missing(b) && a != b:
			differences++
		}
	}

	return float64(differences) + 0.5*float64(missingInFrom)
}
