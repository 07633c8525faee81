// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Generator, ai.VehicleExtractor,
// ai.Moderator, ai.Embedder, and ai.Provider for use in unit tests. The mocks
// allow tests to run without external AI service dependencies and enable
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	answer, err := mockProvider.Generator().Generate(ctx, "test prompt")
//
//	// Custom behavior injection
//	mockModerator := mock.NewMockModerator().
//	    WithIsSafeFunc(func(ctx context.Context, content string) (bool, error) {
//	        return false, nil
//	    })
//
//	// Check call counts
//	count := mockModerator.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockGenerator: Echoes the last line of the prompt
//   - MockVehicleExtractor: Scans text for a year and a known make/model pair
//   - MockModerator: Flags a small fixed set of theft-related phrases
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockProvider: Aggregates all four mock services
package mock
