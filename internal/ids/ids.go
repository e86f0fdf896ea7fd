// Package ids provides ID generation for detected knockout items.
// The abstraction keeps the scoring core deterministic under test: production
// code uses UUIDs, tests use a sequential generator.
package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique IDs for newly constructed items
type Generator interface {
	// NewID returns a fresh identifier with the given prefix
	NewID(prefix string) string
}

// UUIDGenerator generates random UUID-backed IDs
type UUIDGenerator struct{}

// NewID returns "<prefix>_<uuid>".
func (UUIDGenerator) NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// Sequence generates deterministic sequential IDs for tests
type Sequence struct {
	next int
}

// NewID returns "<prefix>_001", "<prefix>_002", ...
func (s *Sequence) NewID(prefix string) string {
	s.next++
	return fmt.Sprintf("%s_%03d", prefix, s.next)
}
