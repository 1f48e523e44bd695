// Package main is the entry point for the SolveKit numerics server.
//
// This application exposes the linear-algebra engine as a service: matrix
// arithmetic, decompositions, determinants, inversion, eigenvalues, and
// linear-system solving, each returning a result together with the trace of
// computation steps that produced it.
//
// The server provides:
//   - REST API for tool discovery and execution
//   - WebSocket streaming of step traces
//   - Prometheus metrics
//   - Rate limiting and request IDs
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8600
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
