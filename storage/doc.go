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


// Package storage provides the storage abstraction layer for autointel.
//
// This package defines repository interfaces that decouple storage implementation
// from business logic. It allows for different storage backends (BadgerDB, in-memory,
// etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public constructors
// to enforce abstraction and enable multiple storage backend implementations:
//
//	repo, err := badger.NewSessionRepository(backend)  // returns storage.SessionRepository
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Repositories
//
// Two repositories cover the assistant's persistence needs:
//
//   - SessionRepository: the conversation checkpoint store. Every turn the full
//     session state (messages, routed action) is saved so a restart resumes where
//     the conversation left off.
//   - PassageRepository: owner's-manual passages with their embedding vectors,
//     queried by vector similarity during manual retrieval.
//
// Values are serialized as JSON; keys carry type prefixes so each repository
// can share a single BadgerDB instance.
package storage
