// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity anchor of the system. It carries only the fundamental
// identity information; credential material lives on Auth and account status
// flags live on Profile.
type User struct {
	ID        uuid.UUID // The unique, immutable identifier for this account.
	Email     string    // The user's login identifier. Globally unique.
	Name      string    // Optional display name.
	Auth      *Auth     // The credential record. Exactly one per completed sign-up.
	Profile   *Profile  // The status-flag record. Exactly one per completed sign-up.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// Profile holds account status flags independent of credential material.
type Profile struct {
	UserID             uuid.UUID // Foreign key linking this profile to its User.
	Username           string    // Handle chosen during onboarding. Empty until onboarding completes.
	EmailVerified      bool      // Set to true by the email verification flow.
	OnboardingComplete bool      // Set to true once the user finishes onboarding.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Summary returns the caller-facing projection of a user. Credential material
// is never exposed.
func (u *User) Summary() *UserSummary {
	summary := &UserSummary{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
	if u.Profile != nil {
		summary.EmailVerified = u.Profile.EmailVerified
	}

	return summary
}

// UserSummary is the safe subset of a User returned from auth operations.
type UserSummary struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
}
