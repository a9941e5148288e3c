package pkg

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGameID(t *testing.T) {
	first, second := GenerateGameID(), GenerateGameID()

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), first)
	assert.NotEqual(t, first, second)
}

func TestGenerateNewSessionID(t *testing.T) {
	assert.Len(t, GenerateNewSessionID(), 36)
}
