package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"accounts/config"
	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Lifetimes of the single-use tokens handed out in email links.
const (
	verifyEmailTokenTTL   = 48 * time.Hour
	passwordResetTokenTTL = time.Hour
)

const bearerPrefix = "Bearer "

// authService implements the AuthUsecase interface.
type authService struct {
	txManager            repository.TransactionManager
	userRepo             repository.UserRepository
	tokenRepo            repository.TokenRepository
	hasher               service.PasswordHasher
	sessions             service.SessionService
	tokens               service.TokenGenerator
	mailer               service.Mailer
	issueSessionOnSignUp bool
	logger               *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	TokenRepo repository.TokenRepository
	Hasher    service.PasswordHasher
	Sessions  service.SessionService
	Tokens    service.TokenGenerator
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	issueSessionOnSignUp := false
	if params.Config != nil && params.Config.Auth != nil {
		issueSessionOnSignUp = params.Config.Auth.IssueSessionOnSignUp
	}

	return &authService{
		txManager:            params.TxManager,
		userRepo:             params.UserRepo,
		tokenRepo:            params.TokenRepo,
		hasher:               params.Hasher,
		sessions:             params.Sessions,
		tokens:               params.Tokens,
		mailer:               params.Mailer,
		issueSessionOnSignUp: issueSessionOnSignUp,
		logger:               params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete account creation process: uniqueness
// check, password hashing, atomic persistence of the user with its credential
// and profile records plus the first verification token, then the
// verification email.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	if err := validateSignUp(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during sign-up")
	}

	verificationToken := srv.tokens.NewToken()

	newUser := &entity.User{
		Email: input.Email,
		Name:  input.Name,
		Auth: &entity.Auth{
			PasswordHash: hashedPassword,
		},
		Profile: &entity.Profile{},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.TokenRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during sign-up")
		}

		return tokenRepo.Create(ctx, &entity.Token{
			UserID:    newUser.ID,
			Type:      entity.TokenTypeVerifyEmail,
			Value:     verificationToken,
			ExpiresAt: time.Now().Add(verifyEmailTokenTTL),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute sign-up transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// The account exists at this point. A failed send must not undo it; the
	// user can ask for a resend.
	if _, err := srv.mailer.SendVerificationEmail(ctx, newUser.Email, verificationToken); err != nil {
		srv.log(ctx).Warn("Failed to send verification email after sign-up",
			slog.String("email", newUser.Email), slog.Any("error", err))
	}

	output := &usecase.SignUpOutput{
		User:    newUser.Summary(),
		Message: "Verification email sent",
	}

	if srv.issueSessionOnSignUp {
		sessionToken, err := srv.sessions.Issue(newUser.ID, newUser.Email)
		if err != nil {
			srv.log(ctx).Error("Failed to issue session after sign-up", slog.Any("userID", newUser.ID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to issue session after sign-up")
		}
		output.SessionToken = sessionToken
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// SignIn validates credentials, rejects unverified accounts, and issues a
// session token.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	if err := validateSignIn(input); err != nil {
		return nil, err
	}

	user, err := srv.ValidateCredentials(ctx, input)
	if err != nil {
		return nil, err
	}

	if user.Profile == nil || !user.Profile.EmailVerified {
		srv.log(ctx).Warn("Sign-in rejected for unverified email", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrEmailNotVerified
	}

	sessionToken, err := srv.sessions.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session during sign-in", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session during sign-in")
	}

	srv.log(ctx).Debug("Sign-in completed", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		User:         user.Summary(),
		SessionToken: sessionToken,
	}, nil
}

// ValidateCredentials checks an email/password pair. Every mismatch, whether
// an unknown email, a missing credential record, or a wrong password, yields
// the same ErrInvalidCredentials so callers learn nothing about which part
// failed.
func (srv *authService) ValidateCredentials(ctx context.Context, input usecase.SignInInput) (*entity.User, error) {
	if err := validateSignIn(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Failed sign-in attempt", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for credential check")
	}

	if user.Auth == nil || !srv.hasher.Check(input.Password, user.Auth.PasswordHash) {
		srv.log(ctx).Warn("Failed sign-in attempt", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// VerifyToken checks a session token string without touching the store.
// A bad token is not an error; it reports Valid as false.
func (srv *authService) VerifyToken(ctx context.Context, tokenString string) (*usecase.VerifyTokenOutput, error) {
	if tokenString == "" {
		return nil, domainerrors.NewValidationError([]domainerrors.FieldIssue{
			{Field: "token", Message: "This field is required"},
		})
	}

	tokenString = strings.TrimPrefix(tokenString, bearerPrefix)

	if _, err := srv.sessions.Verify(tokenString); err != nil {
		return &usecase.VerifyTokenOutput{Valid: false}, nil
	}

	return &usecase.VerifyTokenOutput{Valid: true}, nil
}

// VerifyEmail consumes a verification token and marks the account verified.
// The profile update and the token deletion happen in one transaction, so a
// concurrent consumer of the same token makes at most one of them win.
func (srv *authService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) (*usecase.MessageOutput, error) {
	if err := validateToken(input.Token); err != nil {
		return nil, err
	}

	tokenRecord, err := srv.tokenRepo.FindByValue(ctx, entity.TokenTypeVerifyEmail, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrInvalidVerificationToken
		}

		return nil, errors.Wrap(err, "failed to look up verification token")
	}

	if tokenRecord.Expired(time.Now()) {
		return nil, domainerrors.ErrVerificationTokenExpired
	}

	var userEmail string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.TokenRepo()

		user, err := userRepo.FindByID(ctx, tokenRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for email verification")
		}
		if user.Profile == nil {
			return domainerrors.ErrInvalidVerificationToken
		}
		userEmail = user.Email

		user.Profile.EmailVerified = true
		if err := userRepo.UpdateProfile(ctx, user.Profile); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}

		if err := tokenRepo.Delete(ctx, tokenRecord.ID); err != nil {
			// Another request consumed the token between the lookup and here.
			if errors.Is(err, repository.ErrTokenNotFound) {
				return domainerrors.ErrInvalidVerificationToken
			}

			return errors.Wrap(err, "failed to consume verification token")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Email verified", slog.String("email", userEmail))

	return &usecase.MessageOutput{Message: "Email verified"}, nil
}

// RequestPasswordReset invalidates prior reset tokens, mints a fresh one and
// mails the reset link.
func (srv *authService) RequestPasswordReset(ctx context.Context, input usecase.RequestPasswordResetInput) (*usecase.MessageOutput, error) {
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for password reset request")
	}
	if user.Auth == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	resetToken := srv.tokens.NewToken()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()

		// Only the newest reset token may stay valid.
		if err := tokenRepo.DeleteByUserAndType(ctx, user.ID, entity.TokenTypePasswordReset); err != nil {
			return errors.Wrap(err, "failed to invalidate prior reset tokens")
		}

		return tokenRepo.Create(ctx, &entity.Token{
			UserID:    user.ID,
			Type:      entity.TokenTypePasswordReset,
			Value:     resetToken,
			ExpiresAt: time.Now().Add(passwordResetTokenTTL),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset request transaction", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	// Delivery is best effort. The token is already persisted, so the user can
	// retry the request and receive the same outcome.
	if _, err := srv.mailer.SendPasswordResetEmail(ctx, user.Email, resetToken); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.String("email", user.Email), slog.Any("error", err))
	}

	srv.log(ctx).Info("Password reset requested", slog.String("email", user.Email))

	return &usecase.MessageOutput{Message: "Password reset email sent"}, nil
}

// ResetPassword consumes a reset token and replaces the account password.
// The hash update and the token deletion happen in one transaction.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (*usecase.MessageOutput, error) {
	if err := validateResetPassword(input); err != nil {
		return nil, err
	}

	tokenRecord, err := srv.tokenRepo.FindByValue(ctx, entity.TokenTypePasswordReset, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrInvalidResetToken
		}

		return nil, errors.Wrap(err, "failed to look up reset token")
	}

	if tokenRecord.Expired(time.Now()) {
		return nil, domainerrors.ErrResetTokenExpired
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during reset")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		tokenRepo := repoFactory.TokenRepo()

		authRecord, err := authRepo.FindByUserID(ctx, tokenRecord.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidResetToken
			}

			return errors.Wrap(err, "failed to load credential record for reset")
		}

		if err := authRepo.UpdatePasswordHash(ctx, authRecord.ID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		if err := tokenRepo.Delete(ctx, tokenRecord.ID); err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return domainerrors.ErrInvalidResetToken
			}

			return errors.Wrap(err, "failed to consume reset token")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", tokenRecord.UserID))

	return &usecase.MessageOutput{Message: "Password reset successful"}, nil
}

// ResendVerificationEmail re-sends the verification link. A still-valid token
// for an unverified account is reused; otherwise stale tokens are dropped and
// a fresh one is minted.
func (srv *authService) ResendVerificationEmail(ctx context.Context, input usecase.ResendVerificationInput) (*usecase.MessageOutput, error) {
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for verification resend")
	}
	if user.Auth == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	var verificationToken string
	if user.Profile != nil && !user.Profile.EmailVerified {
		existing, err := srv.tokenRepo.FindValidByUser(ctx, user.ID, entity.TokenTypeVerifyEmail)
		if err == nil {
			verificationToken = existing.Value
		} else if !errors.Is(err, repository.ErrTokenNotFound) {
			return nil, errors.Wrap(err, "failed to look up existing verification token")
		}
	}

	if verificationToken == "" {
		verificationToken = srv.tokens.NewToken()

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			tokenRepo := repoFactory.TokenRepo()

			if err := tokenRepo.DeleteByUserAndType(ctx, user.ID, entity.TokenTypeVerifyEmail); err != nil {
				return errors.Wrap(err, "failed to drop stale verification tokens")
			}

			return tokenRepo.Create(ctx, &entity.Token{
				UserID:    user.ID,
				Type:      entity.TokenTypeVerifyEmail,
				Value:     verificationToken,
				ExpiresAt: time.Now().Add(verifyEmailTokenTTL),
			})
		})
		if err != nil {
			srv.log(ctx).Error("Failed to execute verification resend transaction", slog.Any("userID", user.ID), slog.Any("error", err))

			return nil, err
		}
	}

	if _, err := srv.mailer.SendVerificationEmail(ctx, user.Email, verificationToken); err != nil {
		srv.log(ctx).Error("Failed to resend verification email", slog.String("email", user.Email), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Verification email resent", slog.Any("userID", user.ID))

	return &usecase.MessageOutput{Message: "Verification email sent"}, nil
}
