package distance

import "strings"

// PDistance computes the fraction of aligned positions at which two
// equal-length uppercase sequences disagree. Positions containing '-' or
// 'N' in either sequence are excluded from both numerator and denominator.
// If no position is valid, the distance is 0. Mismatched lengths return
// the "unrepresentably large" sentinel together with
// ErrSequenceLengthMismatch; callers must treat that as fatal.
func PDistance(seq1, seq2 string) (float64, error) {
	if len(seq1) != len(seq2) {
		return unrepresentable, ErrSequenceLengthMismatch
	}

	seq1 = strings.ToUpper(seq1)
	seq2 = strings.ToUpper(seq2)

	var differences, valid int
	for i := 0; i < len(seq1); i++ {
		c1, c2 := seq1[i], seq2[i]
		if c1 == '-' || c1 == 'N' || c2 == '-' || c2 == 'N' {
			continue
		}
		valid++
		if c1 != c2 {
			differences++
		}
	}

	if valid == 0 {
		return 0, nil
	}

	return float64(differences) / float64(valid), nil
}

// nucleotideCode maps an uppercase nucleotide character to its nominal
// allele identifier; any other character (gaps, N, ambiguity codes) maps
// to 0, the missing-data sentinel shared with allelic profiles.
var nucleotideCode = map[byte]int{
	'A': 1,
	'C': 2,
	'G': 3,
	'T': 4,
}

// EncodeSequence converts an aligned DNA sequence into the integer-profile
// representation the allelic distance functions expect, so an external
// FASTA adapter can hand the core package ProfileData instead of raw
// strings. A=1, C=2, G=3, T=4; '-', 'N', and any other character decode to
// 0 (missing).
func EncodeSequence(seq string) []int {
	seq = strings.ToUpper(seq)
	out := make([]int, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = nucleotideCode[seq[i]]
	}
	return out
}
