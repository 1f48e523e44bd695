// Package ws provides WebSocket handling for streamed tool execution.
//
// This package implements WebSocket communication for running engine tools
// with a live step trace, so clients can render intermediate computation
// steps as they would appear in a worked solution.
//
// Message Types (Client → Server):
//   - execute: Run a tool with parameters
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - system: Connection established (carries the session id)
//   - start: Execution started
//   - step: One step of the computation trace
//   - result: Final result payload
//   - complete: Operation finished
//   - error: Error occurred
//
// Each connection is assigned a sess_* id and each execute message a job_*
// id; start/step/result/complete/error frames carry the job id so clients
// can correlate interleaved jobs.
//
// Example Usage:
//
//	handler := ws.NewHandler(registry, metrics)
//	router.GET("/stream", handler.HandleConnection)
package ws
