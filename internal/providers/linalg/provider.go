package linalg

import (
	"context"
	"fmt"

	"github.com/solvekit/numerics/internal/infrastructure/monitoring"
	engine "github.com/solvekit/numerics/internal/linalg"
	"github.com/solvekit/numerics/internal/shared/types"
)

// Provider exposes the dense linear-algebra engine as a service provider.
type Provider struct {
	engine  *engine.Engine
	metrics *monitoring.Metrics
}

// NewProvider creates a linalg provider around a configured engine. A nil
// metrics collector disables recording.
func NewProvider(eng *engine.Engine, metrics *monitoring.Metrics) *Provider {
	return &Provider{engine: eng, metrics: metrics}
}

// Definition returns service metadata with all engine tools
func (p *Provider) Definition() types.Service {
	matrixParam := func(name, desc string) types.Parameter {
		return types.Parameter{Name: name, Type: "matrix", Description: desc, Required: true}
	}
	return types.Service{
		ID:          "linalg",
		Name:        "Linear Algebra Service",
		Description: "Dense matrix operations with step-by-step traces (arithmetic, decomposition, eigenvalues, linear systems)",
		Category:    types.CategoryLinalg,
		Capabilities: []string{
			"arithmetic",
			"decomposition",
			"determinant",
			"inversion",
			"eigenvalues",
			"linear_systems",
		},
		Tools: []types.Tool{
			{
				ID:          "linalg.add",
				Name:        "Matrix Addition",
				Description: "Add two matrices of identical shape",
				Parameters:  []types.Parameter{matrixParam("a", "Left operand"), matrixParam("b", "Right operand")},
				Returns:     "matrix",
			},
			{
				ID:          "linalg.multiply",
				Name:        "Matrix Multiplication",
				Description: "Multiply two conformable matrices (Strassen recursion above the size threshold)",
				Parameters:  []types.Parameter{matrixParam("a", "Left operand"), matrixParam("b", "Right operand")},
				Returns:     "matrix",
			},
			{
				ID:          "linalg.determinant",
				Name:        "Determinant",
				Description: "Determinant of a square matrix (LU with cofactor fallback, total over square input)",
				Parameters:  []types.Parameter{matrixParam("matrix", "Square matrix")},
				Returns:     "number",
			},
			{
				ID:          "linalg.inverse",
				Name:        "Matrix Inverse",
				Description: "Inverse by Gauss-Jordan elimination with partial pivoting",
				Parameters:  []types.Parameter{matrixParam("matrix", "Square non-singular matrix")},
				Returns:     "matrix",
			},
			{
				ID:          "linalg.lu",
				Name:        "LU Decomposition",
				Description: "Factor a square matrix into unit lower-triangular L and upper-triangular U",
				Parameters:  []types.Parameter{matrixParam("matrix", "Square matrix")},
				Returns:     "decomposition",
			},
			{
				ID:          "linalg.qr",
				Name:        "QR Decomposition",
				Description: "Factor a matrix into orthogonal Q and upper-triangular R by Gram-Schmidt",
				Parameters:  []types.Parameter{matrixParam("matrix", "Matrix")},
				Returns:     "decomposition",
			},
			{
				ID:          "linalg.cholesky",
				Name:        "Cholesky Decomposition",
				Description: "Factor a symmetric positive-definite matrix into L * L^T",
				Parameters:  []types.Parameter{matrixParam("matrix", "Symmetric positive-definite matrix")},
				Returns:     "decomposition",
			},
			{
				ID:          "linalg.eigenvalues",
				Name:        "Eigenvalues",
				Description: "Real eigenvalues by unshifted QR iteration; non-convergence is reported, not an error",
				Parameters:  []types.Parameter{matrixParam("matrix", "Square matrix")},
				Returns:     "eigenvalues",
			},
			{
				ID:          "linalg.solve",
				Name:        "Linear System Solve",
				Description: "Solve Ax = b with adaptive method selection and residual reporting",
				Parameters: []types.Parameter{
					matrixParam("matrix", "Square coefficient matrix"),
					{Name: "rhs", Type: "vector", Description: "Right-hand side", Required: true},
				},
				Returns: "solution",
			},
		},
	}
}

// Execute routes a tool call into the engine
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "linalg.add":
		return p.binary(params, p.engine.Add)
	case "linalg.multiply":
		return p.binary(params, p.engine.Multiply)
	case "linalg.determinant":
		return p.determinant(params)
	case "linalg.inverse":
		return p.inverse(params)
	case "linalg.lu":
		return p.decompose(params, p.engine.LUDecomposition)
	case "linalg.qr":
		return p.decompose(params, p.engine.QRDecomposition)
	case "linalg.cholesky":
		return p.decompose(params, p.engine.CholeskyDecomposition)
	case "linalg.eigenvalues":
		return p.eigenvalues(params)
	case "linalg.solve":
		return p.solve(params)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) binary(params map[string]interface{}, op func(a, b *engine.Matrix) (*engine.MatrixResult, error)) (*types.Result, error) {
	a, err := GetMatrix(params, "a")
	if err != nil {
		return Failure(err.Error())
	}
	b, err := GetMatrix(params, "b")
	if err != nil {
		return Failure(err.Error())
	}
	res, err := op(a, b)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"result":   matrixGrid(res.Result),
		"steps":    res.Steps,
		"metadata": metaMap(res.Meta),
	})
}

func (p *Provider) determinant(params map[string]interface{}) (*types.Result, error) {
	m, err := GetMatrix(params, "matrix")
	if err != nil {
		return Failure(err.Error())
	}
	res, err := p.engine.Determinant(m)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"result":   res.Value,
		"steps":    res.Steps,
		"metadata": metaMap(res.Meta),
	})
}

func (p *Provider) inverse(params map[string]interface{}) (*types.Result, error) {
	m, err := GetMatrix(params, "matrix")
	if err != nil {
		return Failure(err.Error())
	}
	res, err := p.engine.Inverse(m)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"result":   matrixGrid(res.Result),
		"steps":    res.Steps,
		"metadata": metaMap(res.Meta),
	})
}

func (p *Provider) decompose(params map[string]interface{}, op func(m *engine.Matrix) (*engine.DecompositionResult, error)) (*types.Result, error) {
	m, err := GetMatrix(params, "matrix")
	if err != nil {
		return Failure(err.Error())
	}
	res, err := op(m)
	if err != nil {
		return Failure(err.Error())
	}
	factors := make([][][]float64, 0, len(res.Factors))
	for _, f := range res.Factors {
		factors = append(factors, matrixGrid(f))
	}
	return Success(map[string]interface{}{
		"factors":  factors,
		"type":     res.Type,
		"steps":    res.Steps,
		"metadata": metaMap(res.Meta),
	})
}

func (p *Provider) eigenvalues(params map[string]interface{}) (*types.Result, error) {
	m, err := GetMatrix(params, "matrix")
	if err != nil {
		return Failure(err.Error())
	}
	res, err := p.engine.Eigenvalues(m)
	if err != nil {
		return Failure(err.Error())
	}
	if p.metrics != nil {
		p.metrics.RecordEigenIterations(res.Convergence.Iterations)
	}
	return Success(map[string]interface{}{
		"eigenvalues": res.Eigenvalues,
		"steps":       res.Steps,
		"convergence": map[string]interface{}{
			"iterations": res.Convergence.Iterations,
			"tolerance":  res.Convergence.Tolerance,
			"converged":  res.Convergence.Converged,
		},
	})
}

func (p *Provider) solve(params map[string]interface{}) (*types.Result, error) {
	m, err := GetMatrix(params, "matrix")
	if err != nil {
		return Failure(err.Error())
	}
	rhs, err := GetVector(params, "rhs")
	if err != nil {
		return Failure(err.Error())
	}
	res, err := p.engine.SolveLinearSystem(m, rhs)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"solution":  append([]float64(nil), res.Solution.Data...),
		"method":    res.Method,
		"steps":     res.Steps,
		"residual":  res.Residual,
		"condition": res.Condition,
	})
}
