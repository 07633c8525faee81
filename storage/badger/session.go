package badger

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/autointel/core"
	"github.com/poiesic/autointel/storage"
)

// SessionRepository implements storage.SessionRepository for BadgerDB.
type SessionRepository struct {
	backend *Backend
}

var _ storage.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(backend *Backend) (*SessionRepository, error) {
	return &SessionRepository{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (r *SessionRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SessionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveSession upserts a session under its ID.
func (r *SessionRepository) SaveSession(ctx context.Context, session *core.Session) error {
	if session == nil || session.ID == "" {
		return storage.ErrInvalidQuery
	}

	session.UpdatedAt = time.Now().UTC()

	value, err := storage.MarshalSession(session)
	if err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSessionKey(session.ID), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetSession retrieves a session by ID.
func (r *SessionRepository) GetSession(ctx context.Context, id string) (*core.Session, error) {
	if id == "" {
		return nil, storage.ErrInvalidQuery
	}

	var result *core.Session
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSessionKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalSession(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// DeleteSession removes a session by ID.
// Deleting a missing session is not an error.
func (r *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return storage.ErrInvalidQuery
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeSessionKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ListSessionIDs returns the IDs of all stored sessions.
func (r *SessionRepository) ListSessionIDs(ctx context.Context) ([]string, error) {
	var ids []string
	prefix := sessionPrefix + ":"

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := string(iter.Item().Key())
			ids = append(ids, strings.TrimPrefix(key, prefix))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
