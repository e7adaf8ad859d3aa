// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// VerifyEmailInput carries the single-use token from a verification link.
type VerifyEmailInput struct {
	Token string
}

// RequestPasswordResetInput identifies the account asking for a reset link.
type RequestPasswordResetInput struct {
	Email string
}

// ResetPasswordInput carries the single-use token from a reset link together
// with the replacement password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResendVerificationInput identifies the account asking for a fresh
// verification link.
type ResendVerificationInput struct {
	Email string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created account and, when session issuance
// on sign-up is enabled, a session token.
type SignUpOutput struct {
	User         *entity.UserSummary
	SessionToken string
	Message      string
}

// SignInOutput returns the signed-in account and its session token.
type SignInOutput struct {
	User         *entity.UserSummary
	SessionToken string
}

// VerifyTokenOutput reports whether a presented session token is valid.
// Verification never errors on a bad token; it reports false instead.
type VerifyTokenOutput struct {
	Valid bool
}

// MessageOutput is the result of operations that only acknowledge completion.
type MessageOutput struct {
	Message string
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp creates a new account with hashed credentials, mints an email
	// verification token, and sends the verification link. Email delivery is
	// best-effort; a send failure does not undo the account.
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)

	// SignIn validates credentials and issues a session token. Accounts with
	// an unverified email are rejected.
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)

	// VerifyToken checks a session token string. A leading "Bearer " prefix
	// is tolerated and stripped.
	VerifyToken(ctx context.Context, tokenString string) (*VerifyTokenOutput, error)

	// VerifyEmail consumes an email verification token and marks the account
	// as verified.
	VerifyEmail(ctx context.Context, input VerifyEmailInput) (*MessageOutput, error)

	// RequestPasswordReset invalidates prior reset tokens, mints a fresh one,
	// and sends the reset link.
	RequestPasswordReset(ctx context.Context, input RequestPasswordResetInput) (*MessageOutput, error)

	// ResetPassword consumes a reset token and replaces the account password.
	ResetPassword(ctx context.Context, input ResetPasswordInput) (*MessageOutput, error)

	// ResendVerificationEmail re-sends the verification link, reusing the
	// still-valid token when one exists.
	ResendVerificationEmail(ctx context.Context, input ResendVerificationInput) (*MessageOutput, error)

	// ValidateCredentials checks an email/password pair without issuing a
	// session. It returns ErrInvalidCredentials on any mismatch and never
	// reveals which part failed.
	ValidateCredentials(ctx context.Context, input SignInInput) (*entity.User, error)
}
