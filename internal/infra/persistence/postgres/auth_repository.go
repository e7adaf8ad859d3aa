package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the domain's AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// FindByUserID retrieves the credential record of a user.
func (repo *authRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Auth, error) {
	var authM model.AuthModel
	err := repo.db.WithContext(ctx).
		First(&authM, "user_id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth by user id")
	}

	return toAuthDomain(&authM), nil
}

// UpdatePasswordHash replaces the stored password hash for the given credential record.
func (repo *authRepository) UpdatePasswordHash(ctx context.Context, authID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthModel{}).
		Where("id = ?", authID).
		Update("password_hash", passwordHash)

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

// toAuthDomain converts a GORM AuthModel to a domain Auth entity.
func toAuthDomain(data *model.AuthModel) *entity.Auth {
	if data == nil {
		return nil
	}

	return &entity.Auth{
		ID:           data.ID,
		UserID:       data.UserID,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAuthDomain converts a domain Auth entity to a GORM AuthModel.
func fromAuthDomain(data *entity.Auth) *model.AuthModel {
	if data == nil {
		return nil
	}

	return &model.AuthModel{
		ID:           data.ID,
		UserID:       data.UserID,
		PasswordHash: data.PasswordHash,
	}
}
