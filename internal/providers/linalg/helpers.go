package linalg

import (
	"fmt"

	engine "github.com/solvekit/numerics/internal/linalg"
	"github.com/solvekit/numerics/internal/shared/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetMatrix extracts a matrix from params with row-by-row type coercion.
func GetMatrix(params map[string]interface{}, key string) (*engine.Matrix, error) {
	raw, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("missing parameter: %s", key)
	}
	rows, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of rows", key)
	}
	grid := make([][]float64, 0, len(rows))
	for i, r := range rows {
		cells, ok := r.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s row %d must be an array of numbers", key, i)
		}
		row := make([]float64, 0, len(cells))
		for j, c := range cells {
			v, ok := toFloat(c)
			if !ok {
				return nil, fmt.Errorf("%s entry (%d,%d) is not a number", key, i, j)
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	m, err := engine.NewMatrix(grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return m, nil
}

// GetVector extracts a vector from params with type coercion.
func GetVector(params map[string]interface{}, key string) (*engine.Vector, error) {
	raw, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("missing parameter: %s", key)
	}
	cells, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of numbers", key)
	}
	data := make([]float64, 0, len(cells))
	for i, c := range cells {
		v, ok := toFloat(c)
		if !ok {
			return nil, fmt.Errorf("%s entry %d is not a number", key, i)
		}
		data = append(data, v)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s must not be empty", key)
	}
	return engine.NewVector(data), nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// matrixGrid converts a matrix to the JSON-friendly grid form.
func matrixGrid(m *engine.Matrix) [][]float64 {
	return m.Clone().Data
}

func metaMap(meta engine.Metadata) map[string]interface{} {
	out := map[string]interface{}{
		"operation":  meta.Operation,
		"complexity": meta.Complexity,
	}
	if meta.Condition != nil {
		out["condition"] = *meta.Condition
	}
	if meta.Determinant != nil {
		out["determinant"] = *meta.Determinant
	}
	return out
}
