package ai

import "context"

// Generator produces free-form text completions from a prompt.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate invokes the text-generation service with the given prompt
	// and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// VehicleExtractor maps free text to a fixed-schema vehicle record.
// Implementations must be thread-safe for concurrent use.
type VehicleExtractor interface {
	// ExtractVehicle analyzes text and extracts the vehicle year, make and
	// model mentioned in it. Fields that are not present in the text are
	// left at their zero value.
	ExtractVehicle(ctx context.Context, text string) (VehicleDetails, error)
}

// Moderator classifies text as safe or unsafe using an external
// moderation-classification service.
type Moderator interface {
	// IsSafe returns false when the moderation service flags the content.
	// The service's response text signals the verdict: a response containing
	// "unsafe" (case-insensitive) means unsafe, anything else means safe.
	// No retries are performed; the caller decides what an invocation
	// failure means.
	IsSafe(ctx context.Context, content string) (bool, error)
}

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider aggregates the AI services for convenient initialization and
// lifecycle management. A provider is constructed once per process and
// reused across turns.
type Provider interface {
	// Generator returns the text-generation service.
	Generator() Generator

	// VehicleExtractor returns the structured-extraction service.
	VehicleExtractor() VehicleExtractor

	// Moderator returns the content-moderation service.
	Moderator() Moderator

	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	Close() error
}
