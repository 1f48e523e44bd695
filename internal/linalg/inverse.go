package linalg

import (
	"fmt"
	"math"
)

// Inverse computes the inverse of a square matrix by Gauss-Jordan elimination
// on the augmented [A | I] matrix with partial pivoting. A pivot magnitude
// under tolerance after the swap search fails with SingularError: a singular
// matrix genuinely has no inverse, so unlike Determinant there is no
// fallback.
func (e *Engine) Inverse(m *Matrix) (*MatrixResult, error) {
	if !m.IsSquare() {
		return nil, &NonSquareError{Op: "inverse", Rows: m.Rows, Cols: m.Cols}
	}

	n := m.Rows
	aug := NewZeroMatrix(n, 2*n)
	for i := 0; i < n; i++ {
		copy(aug.Data[i][:n], m.Data[i])
		aug.Data[i][n+i] = 1
	}
	steps := []string{fmt.Sprintf("Built augmented %dx%d matrix [A | I]", n, 2*n)}

	for col := 0; col < n; col++ {
		// Partial pivoting: pick the row with the largest magnitude in this
		// column.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(aug.Data[row][col]) > math.Abs(aug.Data[pivot][col]) {
				pivot = row
			}
		}
		if pivot != col {
			aug.Data[col], aug.Data[pivot] = aug.Data[pivot], aug.Data[col]
			steps = append(steps, fmt.Sprintf("Swapped row %d with row %d (partial pivot)", col+1, pivot+1))
		}

		p := aug.Data[col][col]
		if math.Abs(p) < e.tolerance {
			return nil, &SingularError{Op: "inverse", Pivot: col, Value: math.Abs(p)}
		}

		for j := 0; j < 2*n; j++ {
			aug.Data[col][j] /= p
		}
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := aug.Data[row][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug.Data[row][j] -= factor * aug.Data[col][j]
			}
		}
		steps = append(steps, fmt.Sprintf("Normalized pivot row %d and eliminated column %d", col+1, col+1))
	}

	inv := NewZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		copy(inv.Data[i], aug.Data[i][n:])
	}
	steps = append(steps, "Extracted right half of augmented matrix as inverse")

	det := e.detValue(m)
	cond := e.conditionEstimate(m)
	return &MatrixResult{
		Result: inv,
		Steps:  steps,
		Meta: Metadata{
			Operation:   "inverse",
			Complexity:  "O(n^3)",
			Condition:   &cond,
			Determinant: &det,
		},
	}, nil
}
