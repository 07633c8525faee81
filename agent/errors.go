package agent

import "errors"

var (
	// ErrAnswererRequired is returned when an information source is not provided.
	ErrAnswererRequired = errors.New("all three answerers required")

	// ErrModeratorRequired is returned when a moderator is not provided.
	ErrModeratorRequired = errors.New("moderator required")

	// ErrSessionRepositoryRequired is returned when a session repository is not provided.
	ErrSessionRepositoryRequired = errors.New("session repository required")
)
