// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/google/uuid"

	"accounts/internal/domain/service"
)

// uuidGenerator implements the TokenGenerator interface with random UUIDs.
// A v4 UUID carries 122 bits of randomness, which puts collision probability
// well below any practical concern; the unique constraint on the token column
// is the backstop.
type uuidGenerator struct{}

// NewUUIDGenerator is the constructor for uuidGenerator.
func NewUUIDGenerator() service.TokenGenerator {
	return &uuidGenerator{}
}

// NewToken returns a fresh random UUID string.
func (g *uuidGenerator) NewToken() string {
	return uuid.NewString()
}
