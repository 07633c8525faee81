package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Role identifies the author of a conversation message.
type Role string

const (
	// RoleUser marks a message written by the human user.
	RoleUser Role = "user"
	// RoleAssistant marks a message generated by the assistant.
	RoleAssistant Role = "assistant"
)

// Action is the routing label produced by the router for a turn.
type Action string

const (
	// ActionManual routes the turn to manual retrieval.
	ActionManual Action = "manual"
	// ActionRecall routes the turn to the recall registry lookup.
	ActionRecall Action = "recall"
	// ActionReview routes the turn to review synthesis.
	ActionReview Action = "review"
)

// Message is a single conversation message. There is exactly one message
// shape in the system; adapters normalize to it at ingestion.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds the checkpointed state of one conversation.
// Messages are append-only within a turn: the safety node may append a
// replacement message but never deletes prior messages.
type Session struct {
	ID         string    `json:"id"`
	Messages   []Message `json:"messages"`
	NextAction Action    `json:"next_action,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Append adds a message to the session.
func (s *Session) Append(msg Message) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	s.Messages = append(s.Messages, msg)
}

// LastMessage returns the most recently appended message.
// The second return value is false when the session is empty.
func (s *Session) LastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// Passage is a chunk of a vehicle manual stored in the local similarity index.
type Passage struct {
	Id         ID
	Source     string
	Content    string
	Vector     []float32
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// PassageMatch is a passage returned from similarity search with its score.
type PassageMatch struct {
	Passage *Passage
	Score   float32
}
