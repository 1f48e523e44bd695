package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a dense row-major matrix of float64 values. Every row has exactly
// Cols entries.
type Matrix struct {
	Rows int         `json:"rows"`
	Cols int         `json:"cols"`
	Data [][]float64 `json:"data"`
}

// Vector is a dense vector of float64 values.
type Vector struct {
	Size int       `json:"size"`
	Data []float64 `json:"data"`
}

// NewMatrix builds a matrix from a grid, validating that the grid is
// non-empty and rectangular. The grid is copied, not aliased.
func NewMatrix(data [][]float64) (*Matrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("matrix requires at least one row and one column")
	}
	cols := len(data[0])
	m := &Matrix{Rows: len(data), Cols: cols, Data: make([][]float64, len(data))}
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged matrix: row %d has %d entries, expected %d", i, len(row), cols)
		}
		m.Data[i] = make([]float64, cols)
		copy(m.Data[i], row)
	}
	return m, nil
}

// NewZeroMatrix builds a rows x cols matrix of zeros.
func NewZeroMatrix(rows, cols int) *Matrix {
	m := &Matrix{Rows: rows, Cols: cols, Data: make([][]float64, rows)}
	for i := range m.Data {
		m.Data[i] = make([]float64, cols)
	}
	return m
}

// NewIdentity builds the n x n identity matrix.
func NewIdentity(n int) *Matrix {
	m := NewZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Data[i][i] = 1
	}
	return m
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{Rows: m.Rows, Cols: m.Cols, Data: make([][]float64, m.Rows)}
	for i, row := range m.Data {
		c.Data[i] = make([]float64, m.Cols)
		copy(c.Data[i], row)
	}
	return c
}

// IsSquare reports whether the matrix is square.
func (m *Matrix) IsSquare() bool { return m.Rows == m.Cols }

// IsSymmetric reports whether the matrix equals its transpose within tol.
func (m *Matrix) IsSymmetric(tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.Rows; i++ {
		for j := i + 1; j < m.Cols; j++ {
			if math.Abs(m.Data[i][j]-m.Data[j][i]) > tol {
				return false
			}
		}
	}
	return true
}

// Transpose returns a new transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	t := NewZeroMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			t.Data[j][i] = m.Data[i][j]
		}
	}
	return t
}

// FrobeniusNorm returns the square root of the sum of squared entries.
func (m *Matrix) FrobeniusNorm() float64 {
	sum := 0.0
	for _, row := range m.Data {
		sum += floats.Dot(row, row)
	}
	return math.Sqrt(sum)
}

// MulVec computes m * v as a new vector.
func (m *Matrix) MulVec(v *Vector) (*Vector, error) {
	if m.Cols != v.Size {
		return nil, &DimensionError{Op: "mulvec", ARows: m.Rows, ACols: m.Cols, BRows: v.Size, BCols: 1}
	}
	out := NewVector(make([]float64, m.Rows))
	for i, row := range m.Data {
		out.Data[i] = floats.Dot(row, v.Data)
	}
	return out, nil
}

// NewVector builds a vector from a slice. The slice is copied.
func NewVector(data []float64) *Vector {
	d := make([]float64, len(data))
	copy(d, data)
	return &Vector{Size: len(d), Data: d}
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector { return NewVector(v.Data) }

// Norm returns the Euclidean norm.
func (v *Vector) Norm() float64 { return floats.Norm(v.Data, 2) }

// Sub computes v - w as a new vector.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if v.Size != w.Size {
		return nil, &DimensionError{Op: "sub", ARows: v.Size, ACols: 1, BRows: w.Size, BCols: 1}
	}
	out := v.Clone()
	floats.Sub(out.Data, w.Data)
	return out, nil
}

// conditionEstimate is the coarse Frobenius-norm/determinant proxy used in
// result metadata and method selection. It is not a spectral condition
// number; callers must not rely on it for tight numerical guarantees.
func (e *Engine) conditionEstimate(m *Matrix) float64 {
	if !m.IsSquare() {
		return math.Inf(1)
	}
	det := math.Abs(e.detValue(m))
	if det < e.tolerance {
		return math.Inf(1)
	}
	norm := m.FrobeniusNorm()
	return norm * norm / det
}
