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


// Package ai provides abstractions for the AI services used in AutoIntel.
//
// This package defines interfaces for text generation, structured vehicle
// extraction, content moderation, and text embeddings. It follows the
// dependency inversion principle: the routing and pipeline logic depends on
// these abstractions rather than on concrete service clients, and every
// service handle is explicitly constructed and injected at startup instead
// of living in package-level globals.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewGenerator, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Test utility constructors (mock.NewMockGenerator, mock.NewMockModerator,
// etc.) return CONCRETE types to enable test assertions and behavior
// injection via the mock's public fields and methods (CallCount, *Func,
// Reset).
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	answer, err := provider.Generator().Generate(ctx, prompt)
//	details, err := provider.VehicleExtractor().ExtractVehicle(ctx, "2024 BMW recalls")
//	safe, err := provider.Moderator().IsSafe(ctx, answer)
package ai
