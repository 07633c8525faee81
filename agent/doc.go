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


// Package agent orchestrates a conversation turn through a small static
// graph: a keyword router picks one of three information sources (manual
// retrieval, recall lookup, review synthesis), the chosen source appends
// its answer, and a safety node vets the result before the turn ends.
//
// The graph is plain data (see transitions in graph.go); there is no
// dynamic planning. Session state is checkpointed after every node so a
// process restart resumes mid-conversation, and every failure mode
// degrades to a user-facing message rather than an error.
package agent
