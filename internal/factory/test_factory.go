package factory

import (
	"time"

	"github.com/snakesocial/snakesocial-go/internal/dependencies/mocks"
	"github.com/snakesocial/snakesocial-go/internal/services/leaderboard"
	"github.com/snakesocial/snakesocial-go/internal/storage/memory"
	"github.com/snakesocial/snakesocial-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Each call builds a fresh isolated store; tests never share state.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, leaderboard.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
