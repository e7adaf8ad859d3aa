// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenType tags the purpose of a single-use token. The token value format is
// identical for every type; only the tag distinguishes what it authorizes.
type TokenType string

const (
	// TokenTypeVerifyEmail authorizes the email verification flow.
	TokenTypeVerifyEmail TokenType = "VERIFY_EMAIL"

	// TokenTypePasswordReset authorizes the password reset flow.
	TokenTypePasswordReset TokenType = "PASSWORD_RESET"
)

// Token is a single-use, time-bounded secret stored server-side.
// It is created when a flow needs to hand the user an out-of-band proof
// (a verification or reset link) and consumed, by deletion, when the proof
// is presented back. At most one valid token of a given type should exist
// per user in steady state; the engine deletes stale tokens of a type
// before issuing a new one.
type Token struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // Links this token to the User it belongs to.
	Type      TokenType // What this token authorizes.
	Value     string    // The unguessable opaque secret handed to the user. Unique.
	ExpiresAt time.Time // Hard expiry. An expired token must never authorize an action.
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
// Expired tokens are inert even while still present in the store.
func (t *Token) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
