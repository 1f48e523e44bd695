// Package linalg implements the dense linear-algebra engine behind the
// numerics service.
//
// This package is organized around a configurable Engine:
//   - arithmetic: matrix addition and multiplication (Strassen above a size threshold)
//   - decompose: LU, QR (Gram-Schmidt) and Cholesky factorizations
//   - determinant: LU-based with a cofactor-expansion fallback
//   - inverse: Gauss-Jordan elimination with partial pivoting
//   - eigen: unshifted QR iteration
//   - solve: adaptive linear-system dispatcher with residual reporting
//
// Every operation returns a result record bundling the numeric output, an
// ordered step trace describing the stages performed, and metadata (complexity
// class, condition estimate, determinant where cheap). Callers' matrices and
// vectors are never mutated; each operation works on fresh copies.
//
// The engine holds two process-lifetime settings, a numerical tolerance and a
// maximum iteration count, fixed at construction:
//
//	eng := linalg.New(linalg.Config{Tolerance: 1e-10, MaxIterations: 1000})
//	res, err := eng.Determinant(m)
//
// Operations are pure with respect to their inputs and safe for concurrent
// use from multiple goroutines.
package linalg
