package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_NewToken(t *testing.T) {
	gen := NewUUIDGenerator()

	token := gen.NewToken()
	assert.NotEmpty(t, token)

	// The value must parse as a v4 UUID.
	parsed, err := uuid.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestUUIDGenerator_TokensAreUnique(t *testing.T) {
	gen := NewUUIDGenerator()

	seen := make(map[string]bool)
	for range 1000 {
		token := gen.NewToken()
		assert.False(t, seen[token], "duplicate token generated: %s", token)
		seen[token] = true
	}
}
