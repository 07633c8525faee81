package agent

import (
	"context"

	"github.com/poiesic/autointel/core"
)

// RefusalMessage replaces answers that fail the safety check.
const RefusalMessage = "I'm sorry, but I cannot provide that information as it violates my safety policy regarding vehicle security or dangerous procedures."

// runSafety vets the most recent message. An unsafe verdict appends the
// refusal as a new assistant message; nothing is ever deleted. A failed
// moderation call fails open so the conversation keeps going.
func (a *Agent) runSafety(ctx context.Context, session *core.Session) {
	last, ok := session.LastMessage()
	if !ok {
		return
	}

	safe, err := a.moderator.IsSafe(ctx, last.Content)
	if err != nil {
		a.logger.Warn("safety check failed, allowing message through", "session", session.ID, "err", err)
		return
	}

	if !safe {
		a.logger.Info("unsafe answer replaced with refusal", "session", session.ID)
		session.Append(core.Message{Role: core.RoleAssistant, Content: RefusalMessage})
	}
}
