package linalg

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvekit/numerics/internal/infrastructure/monitoring"
	engine "github.com/solvekit/numerics/internal/linalg"
	"github.com/solvekit/numerics/internal/shared/types"
)

func newTestProvider() *Provider {
	return NewProvider(engine.NewDefault(), nil)
}

func requireSuccess(t *testing.T, res *types.Result) {
	t.Helper()
	require.NotNil(t, res)
	if !res.Success && res.Error != nil {
		t.Fatalf("expected success, got error: %s", *res.Error)
	}
	require.True(t, res.Success)
}

func requireFailure(t *testing.T, res *types.Result) {
	t.Helper()
	require.NotNil(t, res)
	require.False(t, res.Success)
	require.NotNil(t, res.Error)
}

func TestProviderDefinition(t *testing.T) {
	def := newTestProvider().Definition()

	assert.Equal(t, "linalg", def.ID)
	assert.Equal(t, types.CategoryLinalg, def.Category)
	assert.Len(t, def.Tools, 9)

	for _, tool := range def.Tools {
		assert.NotEmpty(t, tool.ID)
		assert.NotEmpty(t, tool.Description)
		assert.NotEmpty(t, tool.Parameters)
	}
}

func TestProviderExecute(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	matrix := func(rows ...[]interface{}) []interface{} {
		out := make([]interface{}, len(rows))
		for i, r := range rows {
			out[i] = r
		}
		return out
	}

	t.Run("add", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.add", map[string]interface{}{
			"a": matrix([]interface{}{1.0, 2.0}, []interface{}{3.0, 4.0}),
			"b": matrix([]interface{}{5.0, 6.0}, []interface{}{7.0, 8.0}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.Equal(t, [][]float64{{6, 8}, {10, 12}}, res.Data["result"])
		assert.NotEmpty(t, res.Data["steps"])
	})

	t.Run("add with integer params", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.add", map[string]interface{}{
			"a": matrix([]interface{}{1, 2}),
			"b": matrix([]interface{}{3, 4}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.Equal(t, [][]float64{{4, 6}}, res.Data["result"])
	})

	t.Run("add shape mismatch is a failed result", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.add", map[string]interface{}{
			"a": matrix([]interface{}{1.0, 2.0}),
			"b": matrix([]interface{}{1.0, 2.0}, []interface{}{3.0, 4.0}),
		}, nil)
		require.NoError(t, err)
		requireFailure(t, res)
		assert.Contains(t, *res.Error, "dimension mismatch")
	})

	t.Run("multiply", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.multiply", map[string]interface{}{
			"a": matrix([]interface{}{1.0, 2.0}, []interface{}{3.0, 4.0}),
			"b": matrix([]interface{}{5.0, 6.0}, []interface{}{7.0, 8.0}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.Equal(t, [][]float64{{19, 22}, {43, 50}}, res.Data["result"])
	})

	t.Run("determinant", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.determinant", map[string]interface{}{
			"matrix": matrix([]interface{}{1.0, 2.0}, []interface{}{3.0, 4.0}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.InDelta(t, -2.0, res.Data["result"].(float64), 1e-10)
	})

	t.Run("inverse", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.inverse", map[string]interface{}{
			"matrix": matrix([]interface{}{2.0, 0.0}, []interface{}{0.0, 2.0}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.Equal(t, [][]float64{{0.5, 0}, {0, 0.5}}, res.Data["result"])

		meta := res.Data["metadata"].(map[string]interface{})
		assert.Equal(t, "inverse", meta["operation"])
		assert.Contains(t, meta, "determinant")
	})

	t.Run("inverse of singular matrix fails", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.inverse", map[string]interface{}{
			"matrix": matrix([]interface{}{1.0, 1.0}, []interface{}{1.0, 1.0}),
		}, nil)
		require.NoError(t, err)
		requireFailure(t, res)
		assert.Contains(t, *res.Error, "singular")
	})

	t.Run("lu decomposition", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.lu", map[string]interface{}{
			"matrix": matrix([]interface{}{4.0, 3.0}, []interface{}{6.0, 3.0}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.Equal(t, "LU", res.Data["type"])
		factors := res.Data["factors"].([][][]float64)
		require.Len(t, factors, 2)
	})

	t.Run("qr decomposition", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.qr", map[string]interface{}{
			"matrix": matrix([]interface{}{1.0, 0.0}, []interface{}{0.0, 1.0}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.Equal(t, "QR", res.Data["type"])
	})

	t.Run("cholesky decomposition", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.cholesky", map[string]interface{}{
			"matrix": matrix([]interface{}{4.0, 2.0}, []interface{}{2.0, 5.0}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.Equal(t, "Cholesky", res.Data["type"])
		factors := res.Data["factors"].([][][]float64)
		require.Len(t, factors, 1)
	})

	t.Run("eigenvalues", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.eigenvalues", map[string]interface{}{
			"matrix": matrix([]interface{}{2.0, 0.0}, []interface{}{0.0, 5.0}),
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)

		conv := res.Data["convergence"].(map[string]interface{})
		assert.True(t, conv["converged"].(bool))
		values := res.Data["eigenvalues"].([]float64)
		assert.ElementsMatch(t, []float64{2, 5}, values)
	})

	t.Run("solve", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.solve", map[string]interface{}{
			"matrix": matrix([]interface{}{1.0, 0.0}, []interface{}{0.0, 1.0}),
			"rhs":    []interface{}{3.0, 4.0},
		}, nil)
		require.NoError(t, err)
		requireSuccess(t, res)
		assert.Equal(t, "gaussian_elimination", res.Data["method"])
		solution := res.Data["solution"].([]float64)
		assert.InDelta(t, 3.0, solution[0], 1e-10)
		assert.InDelta(t, 4.0, solution[1], 1e-10)
		assert.InDelta(t, 0.0, res.Data["residual"].(float64), 1e-12)
	})

	t.Run("missing parameter", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.determinant", map[string]interface{}{}, nil)
		require.NoError(t, err)
		requireFailure(t, res)
		assert.Contains(t, *res.Error, "missing parameter")
	})

	t.Run("malformed matrix", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.determinant", map[string]interface{}{
			"matrix": []interface{}{[]interface{}{1.0, "x"}},
		}, nil)
		require.NoError(t, err)
		requireFailure(t, res)
	})

	t.Run("unknown tool", func(t *testing.T) {
		res, err := p.Execute(ctx, "linalg.transmogrify", map[string]interface{}{}, nil)
		require.NoError(t, err)
		requireFailure(t, res)
		assert.Contains(t, *res.Error, "unknown tool")
	})
}

func TestEigenvaluesRecordsIterations(t *testing.T) {
	metrics := monitoring.NewMetrics()
	p := NewProvider(engine.NewDefault(), metrics)

	res, err := p.Execute(context.Background(), "linalg.eigenvalues", map[string]interface{}{
		"matrix": []interface{}{
			[]interface{}{2.0, 0.0},
			[]interface{}{0.0, 5.0},
		},
	}, nil)
	require.NoError(t, err)
	requireSuccess(t, res)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "numerics_engine_eigen_iterations_count 1")
}
