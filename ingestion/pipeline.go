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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/autointel/ai"
	"github.com/poiesic/autointel/core"
	"github.com/poiesic/autointel/storage"
)

// Pipeline chunks manual documents, embeds the chunks concurrently, and
// stores them as passages in the local index.
type Pipeline struct {
	passages  storage.PassageRepository
	embedder  ai.Embedder
	pool      *ants.Pool
	chunkSize int
	overlap   int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithChunking overrides the chunk size and overlap.
func WithChunking(chunkSize, overlap int) Option {
	return func(p *Pipeline) error {
		if chunkSize < 1 {
			return fmt.Errorf("chunk size must be positive, got %d", chunkSize)
		}
		if overlap < 0 || overlap >= chunkSize {
			return fmt.Errorf("overlap must be in [0, chunk size), got %d", overlap)
		}
		p.chunkSize = chunkSize
		p.overlap = overlap
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(passages storage.PassageRepository, provider ai.Provider, opts ...Option) (*Pipeline, error) {
	if passages == nil {
		return nil, ErrPassageRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		passages:  passages,
		embedder:  provider.Embedder(),
		pool:      pool,
		chunkSize: defaultChunkSize,
		overlap:   defaultChunkOverlap,
		logger:    slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IngestDocument chunks a document, embeds each chunk on the worker
// pool, and stores the resulting passages. Returns the number of
// distinct passages stored. Chunks whose embedding fails are logged
// and skipped.
func (p *Pipeline) IngestDocument(ctx context.Context, source, text string) (int, error) {
	chunks := dedupeChunks(chunkText(text, p.chunkSize, p.overlap))
	if len(chunks) == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var stored int

	for _, chunk := range chunks {
		chunk := chunk
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			vector, err := p.embedder.EmbedText(ctx, chunk)
			if err != nil {
				p.logger.Error("error embedding chunk", "source", source, "err", err)
				return
			}

			passage := &core.Passage{
				Source:  source,
				Content: chunk,
				Vector:  vector,
			}
			if _, err := p.passages.AddPassages(ctx, passage); err != nil {
				p.logger.Error("error storing passage", "source", source, "err", err)
				return
			}

			mu.Lock()
			stored++
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			p.logger.Error("error submitting chunk to pool", "source", source, "err", err)
		}
	}

	wg.Wait()
	p.logger.Info("document ingested", "source", source, "chunks", len(chunks), "stored", stored)
	return stored, nil
}

// dedupeChunks drops repeated chunks. Overlapping chunks of repetitive
// text can be identical, and identical content maps to the same passage
// id, so storing them again would not grow the index.
func dedupeChunks(chunks []string) []string {
	seen := make(map[core.ID]struct{}, len(chunks))
	distinct := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		id := core.IDFromContent(chunk)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, chunk)
	}
	return distinct
}

// IngestDirectory ingests every .txt and .md file in a directory.
// Returns the total number of passages stored.
func (p *Pipeline) IngestDirectory(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading directory: %w", err)
	}

	var total int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".md" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return total, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}

		stored, err := p.IngestDocument(ctx, entry.Name(), string(data))
		if err != nil {
			return total, err
		}
		total += stored
	}
	return total, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
