package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteOnboarding records the chosen username and marks onboarding done.
// Usernames are stored lowercase so lookups stay case-insensitive.
func (srv *profileService) CompleteOnboarding(ctx context.Context, input usecase.CompleteOnboardingInput) (*usecase.ProfileOutput, error) {
	if err := validateOnboarding(input); err != nil {
		return nil, err
	}

	username := strings.ToLower(input.Username)

	var output *usecase.ProfileOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for onboarding")
		}
		if user.Profile == nil {
			return domainerrors.ErrUserNotFound
		}

		user.Profile.Username = username
		user.Profile.OnboardingComplete = true

		if err := userRepo.UpdateProfile(ctx, user.Profile); err != nil {
			return errors.Wrap(err, "failed to save onboarding profile")
		}

		output = &usecase.ProfileOutput{User: user.Summary()}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Onboarding failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Onboarding completed", slog.Any("userID", input.UserID), slog.String("username", username))

	return output, nil
}

// GetAccount returns the account view for the given user.
func (srv *profileService) GetAccount(ctx context.Context, userID uuid.UUID) (*usecase.AccountOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	output := &usecase.AccountOutput{User: user.Summary()}
	if user.Profile != nil {
		output.Username = user.Profile.Username
		output.OnboardingComplete = user.Profile.OnboardingComplete
	}

	return output, nil
}
