// Package linalg adapts the dense linear-algebra engine to the service
// provider interface.
//
// The provider translates JSON-shaped parameters (matrices as arrays of
// rows, vectors as arrays of numbers) into engine values, runs the requested
// operation, and packages the numeric result, step trace and metadata into a
// Result envelope. Engine failures (dimension mismatches, singular matrices,
// non-square input) surface as failed Results with the engine's error
// message rather than transport errors.
//
// Tools:
//   - linalg.add, linalg.multiply: elementwise and product arithmetic
//   - linalg.lu, linalg.qr, linalg.cholesky: factorizations
//   - linalg.determinant, linalg.inverse: determinant and inversion
//   - linalg.eigenvalues: unshifted QR iteration
//   - linalg.solve: adaptive linear-system solver
package linalg
