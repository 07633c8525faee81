package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMessage(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid message", func(t *testing.T) {
		msg := &Message{Role: RoleUser, Content: "hello", Timestamp: now}
		assert.NoError(t, ValidateMessage(msg))
	})

	t.Run("nil message", func(t *testing.T) {
		err := ValidateMessage(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMessage)
	})

	t.Run("empty content", func(t *testing.T) {
		msg := &Message{Role: RoleUser, Timestamp: now}
		err := ValidateMessage(msg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("invalid role", func(t *testing.T) {
		msg := &Message{Role: Role("system"), Content: "x", Timestamp: now}
		err := ValidateMessage(msg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("future timestamp", func(t *testing.T) {
		msg := &Message{Role: RoleUser, Content: "x", Timestamp: now.Add(time.Hour)}
		err := ValidateMessage(msg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	})
}

func TestValidateSession(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid session", func(t *testing.T) {
		session := &Session{
			ID: "abc",
			Messages: []Message{
				{Role: RoleUser, Content: "q", Timestamp: now},
				{Role: RoleAssistant, Content: "a", Timestamp: now},
			},
			NextAction: ActionManual,
		}
		assert.NoError(t, ValidateSession(session))
	})

	t.Run("nil session", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSession(nil), ErrInvalidSession)
	})

	t.Run("empty id", func(t *testing.T) {
		err := ValidateSession(&Session{})
		assert.ErrorIs(t, err, ErrEmptySessionID)
	})

	t.Run("invalid message inside", func(t *testing.T) {
		session := &Session{
			ID:       "abc",
			Messages: []Message{{Role: RoleUser, Timestamp: now}},
		}
		err := ValidateSession(session)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("unknown next action", func(t *testing.T) {
		session := &Session{ID: "abc", NextAction: Action("weather")}
		err := ValidateSession(session)
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("empty next action allowed", func(t *testing.T) {
		session := &Session{ID: "abc"}
		assert.NoError(t, ValidateSession(session))
	})
}

func TestValidatePassage(t *testing.T) {
	t.Run("valid passage", func(t *testing.T) {
		p := &Passage{Source: "owner-manual.pdf", Content: "Tire pressure: 240 kPa"}
		assert.NoError(t, ValidatePassage(p))
	})

	t.Run("missing source", func(t *testing.T) {
		p := &Passage{Content: "text"}
		assert.ErrorIs(t, ValidatePassage(p), ErrEmptySource)
	})

	t.Run("missing content", func(t *testing.T) {
		p := &Passage{Source: "manual"}
		assert.ErrorIs(t, ValidatePassage(p), ErrEmptyContent)
	})

	t.Run("vector not required", func(t *testing.T) {
		p := &Passage{Source: "manual", Content: "text"}
		require.NoError(t, ValidatePassage(p))
	})
}

func TestValidateAction(t *testing.T) {
	for _, action := range []Action{ActionManual, ActionRecall, ActionReview} {
		assert.NoError(t, ValidateAction(action))
	}
	assert.ErrorIs(t, ValidateAction(Action("other")), ErrInvalidAction)
}
