package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("tire pressure 35 psi")
		b := IDFromContent("tire pressure 35 psi")
		assert.Equal(t, a, b)
	})

	t.Run("different content different id", func(t *testing.T) {
		a := IDFromContent("coolant capacity")
		b := IDFromContent("brake fluid type")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content", func(t *testing.T) {
		// Hash of empty string is still a valid ID.
		id := IDFromContent("")
		assert.Equal(t, id, IDFromContent(""))
	})
}

func TestSessionAppend(t *testing.T) {
	session := &Session{ID: "s1"}

	session.Append(Message{Role: RoleUser, Content: "hello"})
	session.Append(Message{Role: RoleAssistant, Content: "hi there"})

	require.Len(t, session.Messages, 2)
	assert.Equal(t, RoleUser, session.Messages[0].Role)
	assert.Equal(t, RoleAssistant, session.Messages[1].Role)

	// Append fills missing timestamps.
	assert.False(t, session.Messages[0].Timestamp.IsZero())
	assert.False(t, session.Messages[1].Timestamp.IsZero())
}

func TestSessionAppendKeepsTimestamp(t *testing.T) {
	session := &Session{ID: "s1"}
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	session.Append(Message{Role: RoleUser, Content: "hello", Timestamp: ts})

	require.Len(t, session.Messages, 1)
	assert.Equal(t, ts, session.Messages[0].Timestamp)
}

func TestSessionLastMessage(t *testing.T) {
	t.Run("empty session", func(t *testing.T) {
		session := &Session{ID: "s1"}
		_, ok := session.LastMessage()
		assert.False(t, ok)
	})

	t.Run("returns newest", func(t *testing.T) {
		session := &Session{ID: "s1"}
		session.Append(Message{Role: RoleUser, Content: "first"})
		session.Append(Message{Role: RoleAssistant, Content: "second"})

		last, ok := session.LastMessage()
		require.True(t, ok)
		assert.Equal(t, "second", last.Content)
	})
}
