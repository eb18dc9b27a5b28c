package distance

import "github.com/cgmlst/grapetree/profile"

// Symmetric builds the N x N symmetric allelic-distance matrix for data
// under the given missing-data handler. For each unordered pair (i, j) it
// counts the loci where the profiles disagree, applying handler's policy
// at loci where either side is missing. The result is a raw difference
// count, not normalized by locus count.
//
// Steps:
//  1. Validate the handler is one of the four defined values.
//  2. For i < j, accumulate pairwise(i, j) over all G loci.
//  3. Mirror the count into both M[i][j] and M[j][i]; diagonal stays 0.
func Symmetric(data *profile.Data, handler MissingHandler) (Matrix, error) {
	if !ValidHandler(handler) {
		return Matrix{}, ErrUnknownHandler
	}

	n := data.NStrains()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := pairwise(data.Profiles[i], data.Profiles[j], handler)
			rows[i][j] = d
			rows[j][i] = d
		}
	}

	return newMatrix(rows, true), nil
}

// pairwise counts the per-locus differences between two profiles under
// handler's missing-data policy.
func pairwise(a, b []int, handler MissingHandler) float64 {
	var differences int

	for k := range a {
		x, y := a[k], b[k]
		missingX := profile.Missing(x)
		missingY := profile.Missing(y)

		switch {
		case missingX && missingY:
			if handler == AbsoluteDiff {
				differences++
			}
			// IGNORE/RemoveColumn skip; TreatAsAllele: both missing agree.
		case missingX || missingY:
			switch handler {
			case IGNORE, RemoveColumn:
				// locus skipped
			case TreatAsAllele, AbsoluteDiff:
				differences++
			}
		default:
			if x != y {
				differences++
			}
		}
	}

	return float64(differences)
}
