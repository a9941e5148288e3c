package pkg

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateGameID - generates a unique game id. It is kept to 32 url-safe
// characters so it fits chat callback data and deep link payloads.
func GenerateGameID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateNewSessionID - generates a new unique id for a websocket player.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
