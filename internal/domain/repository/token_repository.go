// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when a single-use token is not found, either
// because it never existed or because a previous operation already consumed it.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository defines the operations for single-use token persistence.
type TokenRepository interface {
	// Create persists a new single-use token.
	Create(ctx context.Context, token *entity.Token) error

	// FindByValue retrieves an unconsumed token by its opaque value and type.
	// Expiry is not checked here; callers decide how to treat expired tokens.
	FindByValue(ctx context.Context, tokenType entity.TokenType, value string) (*entity.Token, error)

	// FindValidByUser retrieves the newest unexpired token of a type for a user,
	// or ErrTokenNotFound when none exists.
	FindValidByUser(ctx context.Context, userID uuid.UUID, tokenType entity.TokenType) (*entity.Token, error)

	// Delete consumes a token by removing it. Returns ErrTokenNotFound when the
	// token was already consumed, which lets racing consumers detect they lost.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserAndType removes every token of a type held by a user. Used to
	// invalidate prior secrets before issuing a fresh one.
	DeleteByUserAndType(ctx context.Context, userID uuid.UUID, tokenType entity.TokenType) error

	// DeleteExpired removes all expired tokens and reports how many were removed.
	// Called periodically for cleanup; expired tokens are already inert.
	DeleteExpired(ctx context.Context) (int64, error)
}
