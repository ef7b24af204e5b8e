package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/iotagame/internal/dependencies/mocks"
	"github.com/mcoot/iotagame/internal/services/auth"
	"github.com/mcoot/iotagame/internal/storage/memory"
	"github.com/mcoot/iotagame/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// With no queued Intn values the mock shuffle rotates the deck left by one.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.Config{Cost: bcrypt.MinCost}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
