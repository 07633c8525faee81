// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package autointel

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/poiesic/autointel/agent"
	"github.com/poiesic/autointel/ai"
	"github.com/poiesic/autointel/ai/openai"
	"github.com/poiesic/autointel/core"
	"github.com/poiesic/autointel/ingestion"
	"github.com/poiesic/autointel/manual"
	"github.com/poiesic/autointel/recall"
	"github.com/poiesic/autointel/review"
	"github.com/poiesic/autointel/storage"
	"github.com/poiesic/autointel/storage/badger"
)

// Assistant is the top-level conversational automotive assistant.
// It owns storage, the AI provider, the three information sources, and
// the agent that orchestrates them, and serializes turns per session.
type Assistant struct {
	backend     *badger.Backend
	sessionRepo storage.SessionRepository
	passageRepo storage.PassageRepository
	provider    ai.Provider
	agent       *agent.Agent
	logger      *slog.Logger

	mu           sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig        *ai.Config
	provider        ai.Provider
	inMemory        bool
	registryURL     string
	politenessDelay time.Duration
	reviewOpts      []review.ReviewerOption
}

// WithAIConfig sets the AI service configuration.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider injects a pre-built AI provider, bypassing the
// OpenAI-compatible default. Used in tests.
func WithAIProvider(provider ai.Provider) AssistantOption {
	return func(o *assistantOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps all state in memory instead of on disk.
func WithInMemoryStorage() AssistantOption {
	return func(o *assistantOptions) {
		o.inMemory = true
	}
}

// WithRecallRegistryURL overrides the recall registry endpoint.
func WithRecallRegistryURL(url string) AssistantOption {
	return func(o *assistantOptions) {
		o.registryURL = url
	}
}

// WithReviewerOptions passes options through to the review synthesizer.
func WithReviewerOptions(opts ...review.ReviewerOption) AssistantOption {
	return func(o *assistantOptions) {
		o.reviewOpts = append(o.reviewOpts, opts...)
	}
}

// NewAssistant creates an assistant backed by a BadgerDB store at filePath.
func NewAssistant(filePath string, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	sessionRepo, err := badger.NewSessionRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	passageRepo, err := badger.NewPassageRepository(backend)
	if err != nil {
		sessionRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			passageRepo.Close()
			sessionRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	retriever, err := manual.NewRetriever(passageRepo, provider)
	if err != nil {
		return nil, closeAll(err, provider, passageRepo, sessionRepo, backend)
	}

	lookup, err := recall.NewLookup(provider.VehicleExtractor(), recall.NewRegistryClient(options.registryURL))
	if err != nil {
		return nil, closeAll(err, provider, passageRepo, sessionRepo, backend)
	}

	reviewer, err := review.NewReviewer(provider.Generator(), options.reviewOpts...)
	if err != nil {
		return nil, closeAll(err, provider, passageRepo, sessionRepo, backend)
	}

	ag, err := agent.New(retriever, lookup, reviewer, provider.Moderator(), sessionRepo)
	if err != nil {
		return nil, closeAll(err, provider, passageRepo, sessionRepo, backend)
	}

	return &Assistant{
		backend:      backend,
		sessionRepo:  sessionRepo,
		passageRepo:  passageRepo,
		provider:     provider,
		agent:        ag,
		logger:       slog.Default(),
		sessionLocks: make(map[string]*sync.Mutex),
	}, nil
}

func closeAll(err error, provider ai.Provider, closers ...interface{ Close() error }) error {
	provider.Close()
	for _, c := range closers {
		c.Close()
	}
	return err
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Chat processes one user message in the given session and returns the
// assistant's reply. Turns within a session run one at a time; the
// session is loaded from the checkpoint store, so a restarted process
// resumes the conversation.
func (a *Assistant) Chat(ctx context.Context, sessionID, message string) (string, error) {
	if sessionID == "" {
		return "", storage.ErrInvalidQuery
	}

	lock := a.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := a.sessionRepo.GetSession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return "", err
		}
		session = &core.Session{ID: sessionID}
	}

	return a.agent.Turn(ctx, session, message), nil
}

// ResetSession discards all state for a session.
func (a *Assistant) ResetSession(ctx context.Context, sessionID string) error {
	lock := a.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	return a.sessionRepo.DeleteSession(ctx, sessionID)
}

// SessionRepository exposes the session checkpoint store.
func (a *Assistant) SessionRepository() storage.SessionRepository {
	return a.sessionRepo
}

// PassageRepository exposes the manual passage index.
func (a *Assistant) PassageRepository() storage.PassageRepository {
	return a.passageRepo
}

// NewIngestionPipeline creates a pipeline that feeds the passage index.
func (a *Assistant) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.passageRepo, a.provider, opts...)
}

// Close releases the AI provider and storage.
func (a *Assistant) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}
	if err := a.passageRepo.Close(); err != nil {
		a.logger.Error("error closing passage repository", "err", err)
		return err
	}
	if err := a.sessionRepo.Close(); err != nil {
		a.logger.Error("error closing session repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// sessionLock returns the mutex serializing turns for a session.
func (a *Assistant) sessionLock(sessionID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	lock, ok := a.sessionLocks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		a.sessionLocks[sessionID] = lock
	}
	return lock
}
