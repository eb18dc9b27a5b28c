// Package distance computes pairwise distance matrices from allelic
// profiles or aligned DNA sequences under a chosen missing-data policy.
// It is Component A of the tree-inference pipeline: ProfileData -> Matrix.
package distance

import "errors"

// ErrUnknownHandler is returned when a MissingHandler value outside 0..3 is requested.
var ErrUnknownHandler = errors.New("distance: unknown missing-data handler")

// ErrSequenceLengthMismatch is returned by PDistance when the two sequences differ in length.
var ErrSequenceLengthMismatch = errors.New("distance: sequences must have equal length")

// unrepresentable is the sentinel p-distance returned alongside
// ErrSequenceLengthMismatch; callers must treat it as fatal rather than use it.
const unrepresentable = 1.0e308

// MissingHandler selects how a locus where at least one profile is missing
// contributes to the pairwise difference count. Wire values are stable:
// 0=IGNORE, 1=REMOVE_COLUMN, 2=TREAT_AS_ALLELE, 3=ABSOLUTE_DIFF.
type MissingHandler int

const (
	// IGNORE skips any locus where either profile is missing.
	IGNORE MissingHandler = iota
	// RemoveColumn behaves identically to IGNORE (see spec note): the
	// reference implementation never actually removes a shared column,
	// it only skips the pair-local locus. Kept as a distinct wire value
	// for protocol compatibility.
	RemoveColumn
	// TreatAsAllele treats "missing" as a distinct allele state: two
	// missing calls agree, one missing and one present always disagree.
	TreatAsAllele
	// AbsoluteDiff counts any locus touched by a missing call as a
	// difference, regardless of the other profile's value.
	AbsoluteDiff
)

// ValidHandler reports whether h is one of the four defined handlers.
func ValidHandler(h MissingHandler) bool {
	return h >= IGNORE && h <= AbsoluteDiff
}

// Matrix is a square N x N table of non-negative finite distances.
// A Symmetric matrix satisfies M[i][j] == M[j][i] and M[i][i] == 0; an
// asymmetric matrix (from Asymmetric) only guarantees the diagonal is
// zero. Matrix is immutable once returned by this package.
type Matrix struct {
	rows      [][]float64
	symmetric bool
}

// newMatrix wraps a pre-built N x N table. Every row must have length
// len(rows); callers within this package only ever construct well-formed
// matrices, so this is unchecked.
func newMatrix(rows [][]float64, symmetric bool) Matrix {
	return Matrix{rows: rows, symmetric: symmetric}
}

// FromRows wraps an already-computed N x N table as an asymmetric Matrix.
// Used by the arborescence builder to wrap its cycle-contracted distance
// tables, which are not derived directly from a ProfileData batch.
func FromRows(rows [][]float64) Matrix {
	return newMatrix(rows, false)
}

// N returns the matrix dimension.
func (m Matrix) N() int {
	return len(m.rows)
}

// At returns the distance from i to j.
func (m Matrix) At(i, j int) float64 {
	return m.rows[i][j]
}

// Symmetric reports whether this matrix guarantees M[i][j] == M[j][i].
func (m Matrix) Symmetric() bool {
	return m.symmetric
}

// Rows exposes the underlying row-major table read-only; callers must not
// mutate the returned slices.
func (m Matrix) Rows() [][]float64 {
	return m.rows
}

// HarmonicMeanScore computes the harmonic mean of node i's positive
// outgoing distances to every other vertex: count / sum(1/D[i][j]). Used
// by both the classical and arborescence builders to break ties among
// candidates at the same minimum distance — it prefers the vertex that is
// globally close to many others. Returns 0 if no positive distance exists.
func (m Matrix) HarmonicMeanScore(i int) float64 {
	var sumReciprocals float64
	var count int

	for j := 0; j < len(m.rows); j++ {
		if j == i {
			continue
		}
		d := m.rows[i][j]
		if d > 0 {
			sumReciprocals += 1.0 / d
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return float64(count) / sumReciprocals
}
