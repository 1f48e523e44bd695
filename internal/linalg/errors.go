package linalg

import "fmt"

// DimensionError reports operand shapes incompatible with the requested
// operation. It is never retried internally.
type DimensionError struct {
	Op    string
	ARows int
	ACols int
	BRows int
	BCols int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: %dx%d vs %dx%d", e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// NonSquareError reports a square-only operation applied to a rectangular
// matrix.
type NonSquareError struct {
	Op   string
	Rows int
	Cols int
}

func (e *NonSquareError) Error() string {
	return fmt.Sprintf("%s: requires a square matrix, got %dx%d", e.Op, e.Rows, e.Cols)
}

// SingularError reports a pivot whose magnitude fell under the engine
// tolerance during elimination. Determinant absorbs it behind the cofactor
// fallback; inversion and LU decomposition surface it to the caller.
type SingularError struct {
	Op    string
	Pivot int
	Value float64
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("%s: matrix is singular or near-singular (pivot %d magnitude %.3e under tolerance)", e.Op, e.Pivot, e.Value)
}

// NotPositiveDefiniteError reports a Cholesky factorization attempted on a
// matrix that is not positive-definite.
type NotPositiveDefiniteError struct {
	Row   int
	Value float64
}

func (e *NotPositiveDefiniteError) Error() string {
	return fmt.Sprintf("cholesky: matrix is not positive-definite (diagonal term %.3e at row %d)", e.Value, e.Row)
}
