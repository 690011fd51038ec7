package mocks

import (
	"fmt"

	"github.com/snakesocial/snakesocial-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// Results are consumed from queues; when a queue is exhausted, Intn returns 0
// and ID falls back to a deterministic counter-based identifier.
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// IDResults is a queue of results to return from ID
	IDResults []string
	idIndex   int

	idCounter int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// ID returns the next queued result, or a deterministic fallback so that
// distinct calls still produce distinct identifiers
func (r *MockRandom) ID(prefix string) string {
	if r.idIndex < len(r.IDResults) {
		result := r.IDResults[r.idIndex]
		r.idIndex++
		return result
	}
	r.idCounter++
	return fmt.Sprintf("%smock%d", prefix, r.idCounter)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueID adds values to the ID result queue
func (r *MockRandom) QueueID(values ...string) {
	r.IDResults = append(r.IDResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.IDResults = nil
	r.idIndex = 0
	r.idCounter = 0
}
