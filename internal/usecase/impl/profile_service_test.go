package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	mockRepo "accounts/internal/mocks/repository"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return profileServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestProfileService_CompleteOnboarding_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := verifiedUser("user@example.com")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			mockUserRepo.EXPECT().
				UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					// Stored lowercase regardless of the submitted casing.
					assert.Equal(t, "new_user", profile.Username)
					assert.True(t, profile.OnboardingComplete)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CompleteOnboarding(ctx, usecase.CompleteOnboardingInput{
		UserID:   user.ID,
		Username: "New_User",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestProfileService_CompleteOnboarding_UsernameTaken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := verifiedUser("user@example.com")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
				Return(domainerrors.ErrUsernameTaken)

			return fn(mockFactory)
		})

	output, err := fx.service.CompleteOnboarding(ctx, usecase.CompleteOnboardingInput{
		UserID:   user.ID,
		Username: "taken",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestProfileService_CompleteOnboarding_InvalidUsername(t *testing.T) {
	fx := createTestProfileService(t)

	output, err := fx.service.CompleteOnboarding(context.Background(), usecase.CompleteOnboardingInput{
		UserID:   uuid.New(),
		Username: "no spaces!",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var verr *domainerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProfileService_CompleteOnboarding_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.CompleteOnboarding(ctx, usecase.CompleteOnboardingInput{
		UserID:   userID,
		Username: "newuser",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_GetAccount(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := verifiedUser("user@example.com")
	user.Profile.Username = "existing_user"
	user.Profile.OnboardingComplete = true

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetAccount(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, "existing_user", output.Username)
	assert.True(t, output.OnboardingComplete)
	require.NotNil(t, output.User)
	assert.Equal(t, user.Email, output.User.Email)
}

func TestProfileService_GetAccount_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetAccount(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
