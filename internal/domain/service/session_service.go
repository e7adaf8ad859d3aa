package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// SessionService defines the interface for issuing and verifying stateless
// session tokens. Verification is purely computational: it re-checks the
// signature and expiry against the configured secret and never touches the
// store, so an issued token stays valid for its full lifetime regardless of
// later account changes.
type SessionService interface {
	// Issue signs a new session token asserting the given identity.
	Issue(userID uuid.UUID, email string) (string, error)

	// Verify checks the validity of a token string and returns its claims.
	// It fails on bad signature, malformed token, or expiry.
	Verify(tokenString string) (*SessionClaims, error)
}
