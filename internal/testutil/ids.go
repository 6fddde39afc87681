package testutil

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ObjectIDGenerator produces deterministic 24-character hexadecimal record
// identifiers for tests, shaped like the store's generated object ids.
//
// Deterministic ids keep fixtures and golden files stable across runs.
// Thread-safe via internal mutex.
type ObjectIDGenerator struct {
	mu      sync.Mutex
	counter uint64
}

// NewObjectIDGenerator creates a generator starting at 0.
// The first call to Next returns "000000000000000000000001".
func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{}
}

// Next returns the next identifier in the sequence.
func (g *ObjectIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("%024x", g.counter)
}

// RandomObjectID returns a random well-formed record identifier.
// Use when a test needs an id that is guaranteed not to resolve.
func RandomObjectID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:12])
}
