// Package middleware provides the Gin middleware stack for the numerics
// backend: CORS, per-IP and global rate limiting, and request-id tagging.
package middleware
