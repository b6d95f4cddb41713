package factory

import (
	"time"

	"github.com/kihyunnn/Texas-holdem/internal/dependencies/mocks"
	"github.com/kihyunnn/Texas-holdem/internal/storage/memory"
	"github.com/kihyunnn/Texas-holdem/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock      *mocks.MockClock
	MockRandom     *mocks.MockRandom
	MockSummarizer *mocks.MockSummarizer
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockSummarizer := mocks.NewMockSummarizer("")

	app := newWithDependencies(store, mockClock, mockRandom, mockSummarizer, time.Second, testutil.NopLogger())

	return &TestApp{
		App:            app,
		MockClock:      mockClock,
		MockRandom:     mockRandom,
		MockSummarizer: mockSummarizer,
	}
}
