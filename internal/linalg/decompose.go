package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LUDecomposition factors a square matrix into a unit lower-triangular L and
// an upper-triangular U with A = LU. No row permutation is performed: a pivot
// magnitude under the engine tolerance fails with SingularError rather than
// swapping rows. Callers needing robustness on nearly-singular systems should
// route through the QR or Gauss-Jordan paths.
func (e *Engine) LUDecomposition(m *Matrix) (*DecompositionResult, error) {
	if !m.IsSquare() {
		return nil, &NonSquareError{Op: "lu", Rows: m.Rows, Cols: m.Cols}
	}

	steps := []string{fmt.Sprintf("Initialized L as %dx%d identity, U as copy of input", m.Rows, m.Cols)}
	l, u, err := e.luFactor(m)
	if err != nil {
		return nil, err
	}
	steps = append(steps, fmt.Sprintf("Eliminated below the diagonal across %d pivot columns", m.Cols-1))

	det := 1.0
	for i := 0; i < u.Rows; i++ {
		det *= u.Data[i][i]
	}
	steps = append(steps, fmt.Sprintf("Determinant from diagonal of U: %g", det))

	return &DecompositionResult{
		Factors: []*Matrix{l, u},
		Type:    "LU",
		Steps:   steps,
		Meta:    Metadata{Operation: "lu_decomposition", Complexity: "O(n^3)", Determinant: &det},
	}, nil
}

// luFactor runs the unpivoted elimination shared by LUDecomposition,
// Determinant and the LU solve path.
func (e *Engine) luFactor(m *Matrix) (l, u *Matrix, err error) {
	n := m.Rows
	l = NewIdentity(n)
	u = m.Clone()

	for i := 0; i < n; i++ {
		if math.Abs(u.Data[i][i]) < e.tolerance {
			return nil, nil, &SingularError{Op: "lu", Pivot: i, Value: math.Abs(u.Data[i][i])}
		}
		for k := i + 1; k < n; k++ {
			factor := u.Data[k][i] / u.Data[i][i]
			l.Data[k][i] = factor
			floats.AddScaled(u.Data[k], -factor, u.Data[i])
			u.Data[k][i] = 0
		}
	}
	return l, u, nil
}

// QRDecomposition factors a matrix into an orthogonal Q and upper-triangular
// R via classical Gram-Schmidt over columns. A column whose residual norm
// falls under tolerance is left as a zero column of Q: rank deficiency is
// tolerated silently here, unlike LU's hard failure on a small pivot. The two
// postures are deliberately different.
func (e *Engine) QRDecomposition(m *Matrix) (*DecompositionResult, error) {
	q, r := e.qrFactor(m)
	steps := []string{
		fmt.Sprintf("Orthogonalized %d columns with classical Gram-Schmidt", m.Cols),
		"Accumulated projection coefficients into R",
	}
	return &DecompositionResult{
		Factors: []*Matrix{q, r},
		Type:    "QR",
		Steps:   steps,
		Meta:    Metadata{Operation: "qr_decomposition", Complexity: "O(n^3)"},
	}, nil
}

// qrFactor runs Gram-Schmidt shared by QRDecomposition, the eigenvalue
// iteration and the QR solve path.
func (e *Engine) qrFactor(m *Matrix) (q, r *Matrix) {
	rows, cols := m.Rows, m.Cols
	q = NewZeroMatrix(rows, cols)
	r = NewZeroMatrix(cols, cols)

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = m.Data[i][j]
		}
		for k := 0; k < j; k++ {
			proj := 0.0
			for i := 0; i < rows; i++ {
				proj += q.Data[i][k] * m.Data[i][j]
			}
			r.Data[k][j] = proj
			for i := 0; i < rows; i++ {
				col[i] -= proj * q.Data[i][k]
			}
		}
		norm := floats.Norm(col, 2)
		r.Data[j][j] = norm
		if norm < e.tolerance {
			// Rank-deficient column: leave Q's column zero.
			continue
		}
		for i := 0; i < rows; i++ {
			q.Data[i][j] = col[i] / norm
		}
	}
	return q, r
}

// CholeskyDecomposition factors a symmetric positive-definite matrix into a
// lower-triangular L with A = L * Lᵀ.
func (e *Engine) CholeskyDecomposition(m *Matrix) (*DecompositionResult, error) {
	if !m.IsSquare() {
		return nil, &NonSquareError{Op: "cholesky", Rows: m.Rows, Cols: m.Cols}
	}

	l, err := e.choleskyFactor(m)
	if err != nil {
		return nil, err
	}

	det := 1.0
	for i := 0; i < l.Rows; i++ {
		det *= l.Data[i][i] * l.Data[i][i]
	}
	steps := []string{
		fmt.Sprintf("Factored %dx%d symmetric positive-definite matrix into L * L^T", m.Rows, m.Cols),
		fmt.Sprintf("Determinant from squared diagonal of L: %g", det),
	}
	return &DecompositionResult{
		Factors: []*Matrix{l},
		Type:    "Cholesky",
		Steps:   steps,
		Meta:    Metadata{Operation: "cholesky_decomposition", Complexity: "O(n^3/3)", Determinant: &det},
	}, nil
}

func (e *Engine) choleskyFactor(m *Matrix) (*Matrix, error) {
	n := m.Rows
	l := NewZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := m.Data[i][j]
			for k := 0; k < j; k++ {
				sum -= l.Data[i][k] * l.Data[j][k]
			}
			if i == j {
				if sum < e.tolerance {
					return nil, &NotPositiveDefiniteError{Row: i, Value: sum}
				}
				l.Data[i][i] = math.Sqrt(sum)
			} else {
				l.Data[i][j] = sum / l.Data[j][j]
			}
		}
	}
	return l, nil
}
