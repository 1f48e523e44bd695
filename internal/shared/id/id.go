// Package id provides centralized ID generation for the numerics backend.
//
// ULIDs are the single ID format across the service: lexicographically
// sortable, prefixed per type for readable logs (req_*, sess_*, job_*), and
// generated from cryptographically secure entropy.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies an API request
type RequestID string

// SessionID identifies a calling CAS session
type SessionID string

// JobID identifies a streamed computation job
type JobID string

const (
	RequestPrefix = "req"
	SessionPrefix = "sess"
	JobPrefix     = "job"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source,
// useful for deterministic tests
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// NewSessionID generates a new session ID
func NewSessionID() SessionID {
	return SessionID(Default().GenerateWithPrefix(SessionPrefix))
}

// NewJobID generates a new job ID
func NewJobID() JobID {
	return JobID(Default().GenerateWithPrefix(JobPrefix))
}
