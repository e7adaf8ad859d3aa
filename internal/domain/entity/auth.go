// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Auth holds the credential material for a single user account.
// There is exactly one Auth record per User; the UserID uniqueness constraint
// at the store level enforces the 1:1 relationship.
type Auth struct {
	ID           uuid.UUID // The unique ID for this credential record itself.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // The bcrypt hash of the user's password. Never exposed outside the core.
	CreatedAt    time.Time
	UpdatedAt    time.Time // Bumped whenever the password changes.
}
