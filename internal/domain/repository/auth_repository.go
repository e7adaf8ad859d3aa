// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no credential record exists for a user.
var ErrAuthNotFound = errors.New("auth record not found")

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// FindByUserID retrieves the credential record of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Auth, error)

	// UpdatePasswordHash replaces the stored password hash for the given
	// credential record.
	UpdatePasswordHash(ctx context.Context, authID uuid.UUID, passwordHash string) error
}
