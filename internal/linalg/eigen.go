package linalg

import (
	"fmt"
	"math"
)

// Eigenvalues extracts real eigenvalues with the unshifted QR algorithm:
// repeatedly factor A = QR and iterate A <- R*Q (the similarity-preserving
// order) until every off-diagonal magnitude falls under tolerance or the
// iteration budget runs out. Exhausting the budget is not an error; the
// diagonal of the last iterate is reported with Convergence.Converged false
// and the caller decides whether the partial result is acceptable.
//
// Without a shift strategy convergence is only guaranteed for matrices whose
// eigenvalues have distinct magnitudes, or symmetric matrices. Slow or no
// convergence on repeated-magnitude or complex spectra is an inherent
// limitation, not a failure mode.
func (e *Engine) Eigenvalues(m *Matrix) (*EigenResult, error) {
	if !m.IsSquare() {
		return nil, &NonSquareError{Op: "eigenvalues", Rows: m.Rows, Cols: m.Cols}
	}

	a := m.Clone()
	steps := []string{fmt.Sprintf("Started unshifted QR iteration on %dx%d matrix", m.Rows, m.Cols)}

	converged := false
	iterations := 0
	for iter := 1; iter <= e.maxIterations; iter++ {
		iterations = iter
		q, r := e.qrFactor(a)
		a = naiveMultiply(r, q)

		off := offDiagonalMax(a)
		if iter%10 == 0 {
			steps = append(steps, fmt.Sprintf("Iteration %d: largest off-diagonal magnitude %.3e", iter, off))
		}
		if off < e.tolerance {
			converged = true
			steps = append(steps, fmt.Sprintf("Converged after %d iterations", iter))
			break
		}
	}
	if !converged {
		steps = append(steps, fmt.Sprintf("Stopped after %d iterations without convergence", e.maxIterations))
	}

	eigenvalues := make([]float64, a.Rows)
	for i := 0; i < a.Rows; i++ {
		eigenvalues[i] = a.Data[i][i]
	}
	steps = append(steps, "Read eigenvalues off the diagonal of the final iterate")

	return &EigenResult{
		Eigenvalues: eigenvalues,
		Steps:       steps,
		Convergence: Convergence{
			Iterations: iterations,
			Tolerance:  e.tolerance,
			Converged:  converged,
		},
	}, nil
}

func offDiagonalMax(m *Matrix) float64 {
	max := 0.0
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			if i == j {
				continue
			}
			if v := math.Abs(m.Data[i][j]); v > max {
				max = v
			}
		}
	}
	return max
}
