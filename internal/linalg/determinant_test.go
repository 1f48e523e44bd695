package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDeterminant(t *testing.T) {
	eng := NewDefault()

	t.Run("2x2 base case", func(t *testing.T) {
		a, _ := NewMatrix([][]float64{{1, 2}, {3, 4}})

		res, err := eng.Determinant(a)
		require.NoError(t, err)
		assert.InDelta(t, -2.0, res.Value, 1e-12)
		assert.Equal(t, "determinant", res.Meta.Operation)
	})

	t.Run("1x1 base case", func(t *testing.T) {
		a, _ := NewMatrix([][]float64{{7}})

		res, err := eng.Determinant(a)
		require.NoError(t, err)
		assert.Equal(t, 7.0, res.Value)
	})

	t.Run("LU path on 3x3", func(t *testing.T) {
		a, _ := NewMatrix([][]float64{
			{2, 0, 1},
			{1, 3, 2},
			{1, 1, 1},
		})

		res, err := eng.Determinant(a)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, res.Value, 1e-10)
		assert.Equal(t, "O(n^3)", res.Meta.Complexity)
	})

	t.Run("total over singular matrices via cofactor fallback", func(t *testing.T) {
		// LU's leading pivot is zero, forcing the fallback branch. The
		// operation still succeeds and reports a zero determinant.
		a, _ := NewMatrix([][]float64{
			{0, 1, 2},
			{0, 2, 4},
			{0, 3, 6},
		})

		res, err := eng.Determinant(a)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, res.Value, 1e-10)
		assert.Equal(t, "O(n!)", res.Meta.Complexity)
	})

	t.Run("constant rows are singular", func(t *testing.T) {
		a, _ := NewMatrix([][]float64{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		})

		res, err := eng.Determinant(a)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, res.Value, 1e-10)
	})

	t.Run("rectangular input rejected", func(t *testing.T) {
		a, _ := NewMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})

		_, err := eng.Determinant(a)
		var nonSquare *NonSquareError
		assert.ErrorAs(t, err, &nonSquare)
	})

	t.Run("matches gonum on random matrices", func(t *testing.T) {
		for seed := int64(1); seed <= 5; seed++ {
			a := randomMatrix(t, 6, seed)

			res, err := eng.Determinant(a)
			require.NoError(t, err)
			want := mat.Det(toDense(a))
			assert.InDelta(t, want, res.Value, 1e-6)
		}
	})
}

func TestCofactorExpansion(t *testing.T) {
	a, _ := NewMatrix([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})
	assert.InDelta(t, -3.0, cofactorExpansion(a), 1e-12)
}
