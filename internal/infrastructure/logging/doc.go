// Package logging provides the structured logging layer for the numerics
// backend, built on zap.
//
// Production mode emits JSON records suitable for log aggregation;
// development mode emits colored console output with stack traces enabled.
// The level is configured through LOG_LEVEL (see the config package).
package logging
