package postgres

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the domain's TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Create persists a new single-use token.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The token value collided. With 122 bits of randomness this is
			// effectively unreachable, so treat it as an internal failure.
			return domainerrors.NewDatabaseExecuteError(err, "token value collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByValue retrieves an unconsumed token by its opaque value and type.
func (repo *tokenRepository) FindByValue(ctx context.Context, tokenType entity.TokenType, value string) (*entity.Token, error) {
	var tokenM model.TokenModel
	err := repo.db.WithContext(ctx).
		First(&tokenM, "type = ? AND token = ?", string(tokenType), value).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token by value")
	}

	return toTokenDomain(&tokenM), nil
}

// FindValidByUser retrieves the newest unexpired token of a type for a user.
func (repo *tokenRepository) FindValidByUser(ctx context.Context, userID uuid.UUID, tokenType entity.TokenType) (*entity.Token, error) {
	var tokenM model.TokenModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND expires_at > ?", userID, string(tokenType), time.Now()).
		Order("created_at DESC").
		First(&tokenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find valid token for user")
	}

	return toTokenDomain(&tokenM), nil
}

// Delete consumes a token by removing it. A zero row count means another
// operation already consumed the token, which is reported as ErrTokenNotFound
// so racing consumers can tell they lost.
func (repo *tokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.TokenModel{}, "id = ?", id)

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteByUserAndType removes every token of a type held by a user.
func (repo *tokenRepository) DeleteByUserAndType(ctx context.Context, userID uuid.UUID, tokenType entity.TokenType) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.TokenModel{}, "user_id = ? AND type = ?", userID, string(tokenType)).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tokens by user and type")
	}

	return nil
}

// DeleteExpired removes all expired tokens and reports how many were removed.
func (repo *tokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Delete(&model.TokenModel{}, "expires_at <= ?", time.Now())

	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete expired tokens")
	}

	return result.RowsAffected, nil
}

// toTokenDomain converts a GORM TokenModel to a domain Token entity.
func toTokenDomain(data *model.TokenModel) *entity.Token {
	if data == nil {
		return nil
	}

	return &entity.Token{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.TokenType(data.Type),
		Value:     data.Token,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromTokenDomain converts a domain Token entity to a GORM TokenModel.
func fromTokenDomain(data *entity.Token) *model.TokenModel {
	if data == nil {
		return nil
	}

	return &model.TokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      string(data.Type),
		Token:     data.Value,
		ExpiresAt: data.ExpiresAt,
	}
}
