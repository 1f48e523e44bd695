package linalg

import (
	"errors"
	"fmt"
)

// Determinant computes the determinant of a square matrix. It first attempts
// LU decomposition and multiplies U's diagonal; when the matrix is singular
// and LU fails, it falls back to cofactor expansion along the first row,
// which is defined (possibly zero) for every square matrix. The operation is
// therefore total over well-formed square input, degrading from O(n^3) to
// O(n!) on singular matrices.
func (e *Engine) Determinant(m *Matrix) (*ScalarResult, error) {
	if !m.IsSquare() {
		return nil, &NonSquareError{Op: "determinant", Rows: m.Rows, Cols: m.Cols}
	}

	meta := Metadata{Operation: "determinant", Complexity: "O(n^3)"}
	switch m.Rows {
	case 1:
		v := m.Data[0][0]
		meta.Complexity = "O(1)"
		return &ScalarResult{Value: v, Steps: []string{"1x1 matrix: determinant is the single entry"}, Meta: meta}, nil
	case 2:
		v := m.Data[0][0]*m.Data[1][1] - m.Data[0][1]*m.Data[1][0]
		meta.Complexity = "O(1)"
		return &ScalarResult{
			Value: v,
			Steps: []string{fmt.Sprintf("2x2 matrix: ad - bc = %g", v)},
			Meta:  meta,
		}, nil
	}

	var steps []string
	_, u, err := e.luFactor(m)
	if err != nil {
		var singular *SingularError
		if !errors.As(err, &singular) {
			return nil, err
		}
		// Singular input: LU has no valid pivot sequence, so expand cofactors
		// along the first row instead.
		v := cofactorExpansion(m)
		meta.Complexity = "O(n!)"
		steps = append(steps,
			fmt.Sprintf("LU decomposition failed (pivot %d under tolerance)", singular.Pivot),
			"Fell back to cofactor expansion along the first row",
			fmt.Sprintf("Determinant: %g", v),
		)
		return &ScalarResult{Value: v, Steps: steps, Meta: meta}, nil
	}

	v := 1.0
	for i := 0; i < u.Rows; i++ {
		v *= u.Data[i][i]
	}
	steps = append(steps,
		"Factored matrix into LU",
		fmt.Sprintf("Determinant as product of U's diagonal: %g", v),
	)
	return &ScalarResult{Value: v, Steps: steps, Meta: meta}, nil
}

// detValue is the steps-free determinant used for metadata and the condition
// heuristic. Same two-tier strategy as Determinant; never fails on square
// input.
func (e *Engine) detValue(m *Matrix) float64 {
	switch m.Rows {
	case 1:
		return m.Data[0][0]
	case 2:
		return m.Data[0][0]*m.Data[1][1] - m.Data[0][1]*m.Data[1][0]
	}
	if _, u, err := e.luFactor(m); err == nil {
		v := 1.0
		for i := 0; i < u.Rows; i++ {
			v *= u.Data[i][i]
		}
		return v
	}
	return cofactorExpansion(m)
}

func cofactorExpansion(m *Matrix) float64 {
	n := m.Rows
	if n == 1 {
		return m.Data[0][0]
	}
	if n == 2 {
		return m.Data[0][0]*m.Data[1][1] - m.Data[0][1]*m.Data[1][0]
	}
	det := 0.0
	sign := 1.0
	for j := 0; j < n; j++ {
		if m.Data[0][j] != 0 {
			det += sign * m.Data[0][j] * cofactorExpansion(minor(m, 0, j))
		}
		sign = -sign
	}
	return det
}

// minor returns m with row i and column j removed.
func minor(m *Matrix, i, j int) *Matrix {
	out := NewZeroMatrix(m.Rows-1, m.Cols-1)
	r := 0
	for row := 0; row < m.Rows; row++ {
		if row == i {
			continue
		}
		c := 0
		for col := 0; col < m.Cols; col++ {
			if col == j {
				continue
			}
			out.Data[r][c] = m.Data[row][col]
			c++
		}
		r++
	}
	return out
}
