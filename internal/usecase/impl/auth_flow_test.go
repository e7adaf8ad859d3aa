package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	infraauth "accounts/internal/infra/auth"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountStore is an in-memory stand-in for the persistence layer. It serves
// as transaction manager and repository factory at once, so the flow test
// below can chain operations against real state instead of per-call mocks.
type accountStore struct {
	users  map[uuid.UUID]*entity.User
	tokens map[uuid.UUID]*entity.Token
}

func newAccountStore() *accountStore {
	return &accountStore{
		users:  make(map[uuid.UUID]*entity.User),
		tokens: make(map[uuid.UUID]*entity.Token),
	}
}

func (s *accountStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *accountStore) UserRepo() repository.UserRepository   { return &flowUserRepo{s: s} }
func (s *accountStore) AuthRepo() repository.AuthRepository   { return &flowAuthRepo{s: s} }
func (s *accountStore) TokenRepo() repository.TokenRepository { return &flowTokenRepo{s: s} }

type flowUserRepo struct{ s *accountStore }

func (r *flowUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *flowUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.s.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *flowUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = uuid.New()
	if user.Auth != nil {
		user.Auth.ID = uuid.New()
		user.Auth.UserID = user.ID
	}
	if user.Profile != nil {
		user.Profile.UserID = user.ID
	}
	r.s.users[user.ID] = user

	return nil
}

func (r *flowUserRepo) UpdateProfile(_ context.Context, profile *entity.Profile) error {
	user, ok := r.s.users[profile.UserID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Profile = profile

	return nil
}

type flowAuthRepo struct{ s *accountStore }

func (r *flowAuthRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Auth, error) {
	user, ok := r.s.users[userID]
	if !ok || user.Auth == nil {
		return nil, repository.ErrAuthNotFound
	}

	return user.Auth, nil
}

func (r *flowAuthRepo) UpdatePasswordHash(_ context.Context, authID uuid.UUID, passwordHash string) error {
	for _, user := range r.s.users {
		if user.Auth != nil && user.Auth.ID == authID {
			user.Auth.PasswordHash = passwordHash

			return nil
		}
	}

	return repository.ErrAuthNotFound
}

type flowTokenRepo struct{ s *accountStore }

func (r *flowTokenRepo) Create(_ context.Context, token *entity.Token) error {
	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	r.s.tokens[token.ID] = token

	return nil
}

func (r *flowTokenRepo) FindByValue(_ context.Context, tokenType entity.TokenType, value string) (*entity.Token, error) {
	for _, token := range r.s.tokens {
		if token.Type == tokenType && token.Value == value {
			return token, nil
		}
	}

	return nil, repository.ErrTokenNotFound
}

func (r *flowTokenRepo) FindValidByUser(_ context.Context, userID uuid.UUID, tokenType entity.TokenType) (*entity.Token, error) {
	for _, token := range r.s.tokens {
		if token.UserID == userID && token.Type == tokenType && !token.Expired(time.Now()) {
			return token, nil
		}
	}

	return nil, repository.ErrTokenNotFound
}

func (r *flowTokenRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.tokens[id]; !ok {
		return repository.ErrTokenNotFound
	}
	delete(r.s.tokens, id)

	return nil
}

func (r *flowTokenRepo) DeleteByUserAndType(_ context.Context, userID uuid.UUID, tokenType entity.TokenType) error {
	for id, token := range r.s.tokens {
		if token.UserID == userID && token.Type == tokenType {
			delete(r.s.tokens, id)
		}
	}

	return nil
}

func (r *flowTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var removed int64
	now := time.Now()
	for id, token := range r.s.tokens {
		if token.Expired(now) {
			delete(r.s.tokens, id)
			removed++
		}
	}

	return removed, nil
}

// capturingMailer records the tokens handed to it instead of sending mail.
type capturingMailer struct {
	verificationTokens []string
	resetTokens        []string
}

func (m *capturingMailer) SendVerificationEmail(_ context.Context, _, token string) (string, error) {
	m.verificationTokens = append(m.verificationTokens, token)

	return "message-id", nil
}

func (m *capturingMailer) SendPasswordResetEmail(_ context.Context, _, token string) (string, error) {
	m.resetTokens = append(m.resetTokens, token)

	return "message-id", nil
}

func createFlowAuthService(t *testing.T) (usecase.AuthUsecase, *accountStore, *capturingMailer) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		JWT: &config.JWTConfig{
			Secret: "flow-test-secret",
			Expiry: 30 * 24 * time.Hour,
		},
		Auth: &config.AuthConfig{
			BcryptCost: 4, // bcrypt.MinCost keeps the chained hashes fast.
		},
	}

	sessions, err := infraauth.NewJWTService(cfg, logger)
	require.NoError(t, err)

	store := newAccountStore()
	mailer := &capturingMailer{}

	service := NewAuthService(AuthServiceParams{
		TxManager: store,
		UserRepo:  store.UserRepo(),
		TokenRepo: store.TokenRepo(),
		Hasher:    infraauth.NewBcryptHasher(cfg),
		Sessions:  sessions,
		Tokens:    infraauth.NewUUIDGenerator(),
		Mailer:    mailer,
		Config:    cfg,
		Logger:    logger,
	})

	return service, store, mailer
}

// The chained test walks one account through its whole life: sign-up, email
// verification with the exact token that was mailed, sign-in, session check,
// then a password reset that retires the old password.
func TestAuthService_AccountLifecycle(t *testing.T) {
	service, store, mailer := createFlowAuthService(t)
	ctx := context.Background()

	const email = "flow@example.com"
	const password = "Password123!"

	signUpOut, err := service.SignUp(ctx, usecase.SignUpInput{
		Email:    email,
		Password: password,
		Name:     "Flow User",
	})
	require.NoError(t, err)
	require.Len(t, mailer.verificationTokens, 1)
	assert.False(t, signUpOut.User.EmailVerified)

	// The account is not usable until the mailed token is consumed.
	_, err = service.SignIn(ctx, usecase.SignInInput{Email: email, Password: password})
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)

	_, err = service.VerifyEmail(ctx, usecase.VerifyEmailInput{Token: mailer.verificationTokens[0]})
	require.NoError(t, err)

	// The token was single use.
	_, err = service.VerifyEmail(ctx, usecase.VerifyEmailInput{Token: mailer.verificationTokens[0]})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVerificationToken)

	signInOut, err := service.SignIn(ctx, usecase.SignInInput{Email: email, Password: password})
	require.NoError(t, err)
	assert.True(t, signInOut.User.EmailVerified)
	require.NotEmpty(t, signInOut.SessionToken)

	verifyOut, err := service.VerifyToken(ctx, "Bearer "+signInOut.SessionToken)
	require.NoError(t, err)
	assert.True(t, verifyOut.Valid)

	// Reset the password with the mailed reset token and prove the swap took.
	_, err = service.RequestPasswordReset(ctx, usecase.RequestPasswordResetInput{Email: email})
	require.NoError(t, err)
	require.Len(t, mailer.resetTokens, 1)

	const newPassword = "Rotated456$"
	_, err = service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Token:       mailer.resetTokens[0],
		NewPassword: newPassword,
	})
	require.NoError(t, err)

	_, err = service.SignIn(ctx, usecase.SignInInput{Email: email, Password: password})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	reSignIn, err := service.SignIn(ctx, usecase.SignInInput{Email: email, Password: newPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, reSignIn.SessionToken)

	// The reset token was consumed with the swap.
	_, err = service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Token:       mailer.resetTokens[0],
		NewPassword: "Another789#",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)

	assert.Empty(t, store.tokens)
}
