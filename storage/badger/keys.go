package badger

import (
	"fmt"

	"github.com/poiesic/autointel/core"
)

// Key prefixes for different data types
const (
	sessionPrefix = "sesrec"
	passagePrefix = "pasrec"
)

// makeSessionKey generates a key for a session by ID.
func makeSessionKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", sessionPrefix, id))
}

// makePassageKey generates a key for a passage by ID.
func makePassageKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", passagePrefix, id))
}
