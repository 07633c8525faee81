package storage

import (
	"context"

	"github.com/poiesic/autointel/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// SessionRepository persists conversation sessions.
// A session is checkpointed after every turn so a process restart can
// resume the conversation from the last saved state.
type SessionRepository interface {
	Repository

	// SaveSession upserts a session under its ID.
	// Sets the UpdatedAt timestamp automatically.
	SaveSession(ctx context.Context, session *core.Session) error

	// GetSession retrieves a session by ID.
	// Returns ErrNotFound if no session exists under the ID.
	GetSession(ctx context.Context, id string) (*core.Session, error)

	// DeleteSession removes a session by ID.
	// Deleting a session that doesn't exist is not an error.
	DeleteSession(ctx context.Context, id string) error

	// ListSessionIDs returns the IDs of all stored sessions.
	ListSessionIDs(ctx context.Context) ([]string, error)
}

// PassageRepository manages owner's-manual passages and their embeddings.
type PassageRepository interface {
	Repository

	// AddPassages adds one or more passages to storage.
	// For passages with Id=0, derives a content-based ID from Content.
	// Sets InsertedAt timestamp if not already set.
	// Returns the passages with IDs and timestamps populated.
	AddPassages(ctx context.Context, passages ...*core.Passage) ([]*core.Passage, error)

	// GetPassage retrieves a single passage by ID.
	// Returns ErrNotFound if the passage doesn't exist.
	GetPassage(ctx context.Context, id core.ID) (*core.Passage, error)

	// DeletePassages removes passages by their IDs.
	// Returns ErrNotFound if any passage doesn't exist.
	DeletePassages(ctx context.Context, ids ...core.ID) error

	// CountPassages returns the number of stored passages.
	CountPassages(ctx context.Context) (int, error)

	// FindSimilar finds passages similar to the given vector.
	// Returns passages with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.PassageMatch, error)
}
