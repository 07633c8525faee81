package mock

import (
	"context"
	"strconv"
	"strings"

	"github.com/poiesic/autointel/ai"
)

// knownMakes is the brand list the default extraction behavior recognizes.
var knownMakes = []string{
	"hyundai", "bmw", "toyota", "honda", "ford", "kia",
	"mercedes", "audi", "volkswagen", "tesla", "mazda",
}

// MockVehicleExtractor is a test double for ai.VehicleExtractor.
// It allows custom behavior injection via function fields.
type MockVehicleExtractor struct {
	// ExtractVehicleFunc is called by ExtractVehicle if set.
	// If nil, uses default naive token scanning.
	ExtractVehicleFunc func(ctx context.Context, text string) (ai.VehicleDetails, error)

	callCount int
}

// NewMockVehicleExtractor creates a mock extractor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockVehicleExtractor() *MockVehicleExtractor {
	return &MockVehicleExtractor{}
}

// ExtractVehicle scans the text for a four-digit year, a known make, and
// treats the token after the make as the model. Good enough for tests that
// don't inject custom behavior.
func (m *MockVehicleExtractor) ExtractVehicle(ctx context.Context, text string) (ai.VehicleDetails, error) {
	m.callCount++

	if m.ExtractVehicleFunc != nil {
		return m.ExtractVehicleFunc(ctx, text)
	}

	var details ai.VehicleDetails
	words := strings.Fields(text)
	for i, word := range words {
		cleaned := strings.Trim(strings.ToLower(word), ".,!?;:'\"")

		if details.Year == 0 && len(cleaned) == 4 {
			if year, err := strconv.Atoi(cleaned); err == nil && year >= 1950 && year <= 2100 {
				details.Year = year
				continue
			}
		}

		if details.Make == "" {
			for _, make := range knownMakes {
				if cleaned == make {
					details.Make = strings.ToUpper(make[:1]) + make[1:]
					if i+1 < len(words) {
						next := strings.Trim(words[i+1], ".,!?;:'\"")
						if !strings.EqualFold(next, "recalls") && !strings.EqualFold(next, "recall") {
							details.Model = next
						}
					}
					break
				}
			}
		}
	}

	return details, nil
}

// CallCount returns the number of times ExtractVehicle was called.
func (m *MockVehicleExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockVehicleExtractor) Reset() {
	m.callCount = 0
	m.ExtractVehicleFunc = nil
}
