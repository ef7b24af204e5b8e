package mocks

import (
	"github.com/mcoot/iotagame/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing. With nothing
// queued Intn returns 0, String returns "" and Read yields zero bytes.
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int

	// ByteResults is a queue of fill values for Read, one per call
	ByteResults []byte
	byteIndex   int
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

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// Read fills b with the next queued byte, or zeros if none remaining
func (r *MockRandom) Read(b []byte) error {
	var fill byte
	if r.byteIndex < len(r.ByteResults) {
		fill = r.ByteResults[r.byteIndex]
		r.byteIndex++
	}
	for i := range b {
		b[i] = fill
	}
	return nil
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// QueueBytes adds fill values to the Read queue
func (r *MockRandom) QueueBytes(values ...byte) {
	r.ByteResults = append(r.ByteResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.StringResults = nil
	r.stringIndex = 0
	r.ByteResults = nil
	r.byteIndex = 0
}
