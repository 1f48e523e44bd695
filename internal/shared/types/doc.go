// Package types provides shared data structures for the numerics backend.
//
// This package defines the types crossing component boundaries:
//   - Service: service provider definition exposed to the CAS dispatcher
//   - Tool: a single operation a provider offers
//   - Parameter: tool parameter specification
//   - Context: per-call execution context (session, request id)
//   - Result: standard operation result envelope
//   - ExecuteRequest, WSMessage: API request shapes
//
// Upstream collaborators (the expression parser, natural-language layer and
// hybrid dispatcher) construct ExecuteRequest payloads; providers return
// Result envelopes whose Data carries the numeric output, step trace and
// metadata.
package types
