package linalg

// Config defines engine configuration. Zero fields fall back to defaults.
type Config struct {
	// Tolerance is the singularity/convergence threshold.
	Tolerance float64
	// MaxIterations bounds iterative algorithms.
	MaxIterations int
	// StrassenThreshold is the dimension above which multiplication switches
	// to Strassen recursion.
	StrassenThreshold int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:         1e-10,
		MaxIterations:     1000,
		StrassenThreshold: 100,
	}
}

// Engine performs dense linear-algebra operations. Its configuration is
// read-only after construction, so a single Engine is safe for concurrent use.
type Engine struct {
	tolerance         float64
	maxIterations     int
	strassenThreshold int
}

// New creates an engine with the provided configuration, filling zero fields
// from DefaultConfig.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	if cfg.StrassenThreshold <= 0 {
		cfg.StrassenThreshold = def.StrassenThreshold
	}
	return &Engine{
		tolerance:         cfg.Tolerance,
		maxIterations:     cfg.MaxIterations,
		strassenThreshold: cfg.StrassenThreshold,
	}
}

// NewDefault creates an engine with default configuration.
func NewDefault() *Engine {
	return New(DefaultConfig())
}

// Tolerance returns the engine's singularity/convergence threshold.
func (e *Engine) Tolerance() float64 { return e.tolerance }

// MaxIterations returns the engine's iteration budget.
func (e *Engine) MaxIterations() int { return e.maxIterations }

// Metadata describes how a result was produced.
type Metadata struct {
	Operation   string   `json:"operation"`
	Complexity  string   `json:"complexity"`
	Condition   *float64 `json:"condition,omitempty"`
	Determinant *float64 `json:"determinant,omitempty"`
}

// MatrixResult is the outcome of an operation producing a matrix.
type MatrixResult struct {
	Result *Matrix  `json:"result"`
	Steps  []string `json:"steps"`
	Meta   Metadata `json:"metadata"`
}

// ScalarResult is the outcome of an operation producing a single value.
type ScalarResult struct {
	Value float64  `json:"value"`
	Steps []string `json:"steps"`
	Meta  Metadata `json:"metadata"`
}

// Convergence reports how an iterative algorithm terminated.
type Convergence struct {
	Iterations int     `json:"iterations"`
	Tolerance  float64 `json:"tolerance"`
	Converged  bool    `json:"converged"`
}

// EigenResult is the outcome of an eigenvalue extraction. Exceeding the
// iteration budget is not an error: Convergence.Converged is false and the
// diagonal of the last iterate is still reported.
type EigenResult struct {
	Eigenvalues []float64   `json:"eigenvalues"`
	Steps       []string    `json:"steps"`
	Convergence Convergence `json:"convergence"`
}

// SystemResult is the outcome of a linear-system solve. Residual is the
// Euclidean norm of Ax-b, computed independently of the solving method.
type SystemResult struct {
	Solution  *Vector  `json:"solution"`
	Method    string   `json:"method"`
	Steps     []string `json:"steps"`
	Residual  float64  `json:"residual"`
	Condition float64  `json:"condition"`
}

// DecompositionResult is the outcome of a matrix factorization. Factors are
// ordered per decomposition type: [L, U] for LU, [Q, R] for QR, [L] for
// Cholesky.
type DecompositionResult struct {
	Factors []*Matrix `json:"factors"`
	Type    string    `json:"type"`
	Steps   []string  `json:"steps"`
	Meta    Metadata  `json:"metadata"`
}
