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


// Package openai implements the ai service interfaces using OpenAI-compatible
// APIs via langchaingo. It works with any server that speaks the OpenAI wire
// protocol (Ollama, LocalAI, vLLM, Groq, OpenAI itself).
//
// Generation and extraction share a chat model; moderation uses a dedicated
// guard model; embeddings use an embedding model. All three can point at the
// same host or different hosts via ai.Config.
package openai
