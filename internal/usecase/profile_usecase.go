package usecase

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// CompleteOnboardingInput defines the data collected when a user finishes
// onboarding.
type CompleteOnboardingInput struct {
	UserID   uuid.UUID
	Username string
}

// ProfileOutput returns the account state after a profile operation.
type ProfileOutput struct {
	User *entity.UserSummary
}

// AccountOutput returns the full account view for the authenticated user.
type AccountOutput struct {
	User               *entity.UserSummary
	Username           string
	OnboardingComplete bool
}

// ProfileUsecase defines the interface for profile operations on an
// authenticated account.
type ProfileUsecase interface {
	// CompleteOnboarding records the chosen username and marks onboarding done.
	CompleteOnboarding(ctx context.Context, input CompleteOnboardingInput) (*ProfileOutput, error)

	// GetAccount returns the account view for the given user.
	GetAccount(ctx context.Context, userID uuid.UUID) (*AccountOutput, error)
}
