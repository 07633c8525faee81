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


package agent

import (
	"context"
	"log/slog"

	"github.com/poiesic/autointel/ai"
	"github.com/poiesic/autointel/core"
	"github.com/poiesic/autointel/storage"
)

// genericErrorMessage surfaces when turn processing hits an unexpected failure.
const genericErrorMessage = "I'm sorry, something went wrong while processing your request. Please try again."

// Answerer produces a user-facing reply to a question.
// Implementations handle their own failures and always return a string.
type Answerer interface {
	Answer(ctx context.Context, question string) string
}

// Agent runs one conversation turn through the routing graph and
// checkpoints the session after every completed node.
type Agent struct {
	manual    Answerer
	recall    Answerer
	review    Answerer
	moderator ai.Moderator
	sessions  storage.SessionRepository
	logger    *slog.Logger
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
	}
}

// New creates an agent from its three information sources, the safety
// moderator, and the session checkpoint store.
func New(manual, recall, review Answerer, moderator ai.Moderator, sessions storage.SessionRepository, opts ...Option) (*Agent, error) {
	if manual == nil || recall == nil || review == nil {
		return nil, ErrAnswererRequired
	}
	if moderator == nil {
		return nil, ErrModeratorRequired
	}
	if sessions == nil {
		return nil, ErrSessionRepositoryRequired
	}

	a := &Agent{
		manual:    manual,
		recall:    recall,
		review:    review,
		moderator: moderator,
		sessions:  sessions,
		logger:    slog.Default().With("component", "agent"),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Turn processes one user message and returns the assistant's reply.
// The session is mutated in place and checkpointed after every node, so
// a crash mid-turn resumes from the last completed step. Unexpected
// failures surface as a generic message; the session survives.
func (a *Agent) Turn(ctx context.Context, session *core.Session, userMessage string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("turn processing panicked", "session", session.ID, "panic", r)
			session.Append(core.Message{Role: core.RoleAssistant, Content: genericErrorMessage})
			a.checkpoint(ctx, session)
			reply = genericErrorMessage
		}
	}()

	session.Append(core.Message{Role: core.RoleUser, Content: userMessage})
	a.checkpoint(ctx, session)

	for current := stateRouter; current != stateDone; {
		a.runNode(ctx, current, session, userMessage)
		a.checkpoint(ctx, session)
		current = nextState(current, session)
	}

	last, ok := session.LastMessage()
	if !ok || last.Role != core.RoleAssistant {
		return genericErrorMessage
	}
	return last.Content
}

// runNode executes a single graph node against the session.
func (a *Agent) runNode(ctx context.Context, current state, session *core.Session, userMessage string) {
	switch current {
	case stateRouter:
		session.NextAction = Route(userMessage)
		a.logger.Debug("routed message", "session", session.ID, "action", session.NextAction)
	case stateManual:
		a.appendAnswer(ctx, session, a.manual, userMessage)
	case stateRecall:
		a.appendAnswer(ctx, session, a.recall, userMessage)
	case stateReview:
		a.appendAnswer(ctx, session, a.review, userMessage)
	case stateSafety:
		a.runSafety(ctx, session)
	}
}

func (a *Agent) appendAnswer(ctx context.Context, session *core.Session, answerer Answerer, question string) {
	answer := answerer.Answer(ctx, question)
	session.Append(core.Message{Role: core.RoleAssistant, Content: answer})
}

// checkpoint saves the session. A failed save is logged, not fatal; the
// turn keeps going on the in-memory state.
func (a *Agent) checkpoint(ctx context.Context, session *core.Session) {
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Error("session checkpoint failed", "session", session.ID, "err", err)
	}
}
