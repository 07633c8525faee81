package mock

import (
	"context"
	"strings"
)

// MockModerator is a test double for ai.Moderator.
// It allows custom behavior injection via function fields.
type MockModerator struct {
	// IsSafeFunc is called by IsSafe if set.
	// If nil, uses default keyword scanning.
	IsSafeFunc func(ctx context.Context, content string) (bool, error)

	callCount int
}

// NewMockModerator creates a mock moderator with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockModerator() *MockModerator {
	return &MockModerator{}
}

// IsSafe flags content containing a few obviously dangerous phrases.
// Everything else is safe by default.
func (m *MockModerator) IsSafe(ctx context.Context, content string) (bool, error) {
	m.callCount++

	if m.IsSafeFunc != nil {
		return m.IsSafeFunc(ctx, content)
	}

	lowered := strings.ToLower(content)
	for _, phrase := range []string{"hotwire", "disable the immobilizer", "bypass the ignition"} {
		if strings.Contains(lowered, phrase) {
			return false, nil
		}
	}
	return true, nil
}

// CallCount returns the number of times IsSafe was called.
func (m *MockModerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockModerator) Reset() {
	m.callCount = 0
	m.IsSafeFunc = nil
}
