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


package manual

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/autointel/ai"
	"github.com/poiesic/autointel/core"
	"github.com/poiesic/autointel/storage"
)

const (
	// NoMatchesMessage is returned when no manual passage is relevant to the question.
	NoMatchesMessage = "No relevant information found in the manual."

	// lookupFailedMessage is returned when the index or the model cannot be reached.
	lookupFailedMessage = "I'm sorry, I ran into a problem while searching the service manual. Please try again."

	defaultTopK          = 4
	defaultMinSimilarity = 0.0
)

// Retriever answers questions from owner's-manual passages.
// It embeds the question, pulls the top-k similar passages from the index,
// and generates an answer grounded in those passages only.
type Retriever struct {
	passages      storage.PassageRepository
	embedder      ai.Embedder
	generator     ai.Generator
	logger        *slog.Logger
	topK          int
	minSimilarity float32
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithTopK sets how many passages are retrieved per question.
func WithTopK(k int) Option {
	return func(r *Retriever) error {
		if k <= 0 {
			return fmt.Errorf("top-k must be positive, got %d", k)
		}
		r.topK = k
		return nil
	}
}

// WithMinSimilarity sets the similarity floor for retrieved passages.
func WithMinSimilarity(min float32) Option {
	return func(r *Retriever) error {
		r.minSimilarity = min
		return nil
	}
}

// NewRetriever creates a new manual retriever.
func NewRetriever(passages storage.PassageRepository, provider ai.Provider, opts ...Option) (*Retriever, error) {
	if passages == nil {
		return nil, ErrPassageRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Retriever{
		passages:      passages,
		embedder:      provider.Embedder(),
		generator:     provider.Generator(),
		logger:        slog.Default().With("component", "manual"),
		topK:          defaultTopK,
		minSimilarity: defaultMinSimilarity,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Answer answers a question from the manual index.
// Failures never propagate as errors; the caller always gets a user-facing string.
func (r *Retriever) Answer(ctx context.Context, question string) string {
	matches, err := r.retrieve(ctx, question)
	if err != nil {
		r.logger.Error("manual retrieval failed", "err", err)
		return lookupFailedMessage
	}
	if len(matches) == 0 {
		return NoMatchesMessage
	}

	prompt := buildAnswerPrompt(question, formatContext(matches))
	answer, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		r.logger.Error("manual answer generation failed", "err", err)
		return lookupFailedMessage
	}
	return strings.TrimSpace(answer)
}

// retrieve embeds the question and finds the top-k similar passages.
func (r *Retriever) retrieve(ctx context.Context, question string) ([]*core.PassageMatch, error) {
	embedding, err := r.embedder.EmbedText(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	matches, err := r.passages.FindSimilar(ctx, embedding, r.minSimilarity, r.topK)
	if err != nil {
		return nil, fmt.Errorf("querying passage index: %w", err)
	}
	return matches, nil
}

// formatContext joins retrieved passages into a single source-tagged block.
func formatContext(matches []*core.PassageMatch) string {
	parts := make([]string, 0, len(matches))
	for _, match := range matches {
		parts = append(parts, fmt.Sprintf("Source: %s\nContent: %s", match.Passage.Source, match.Passage.Content))
	}
	return strings.Join(parts, "\n---\n")
}
