package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthModel mirrors the 'user_auths' table. The unique constraint on UserID
// enforces the 1:1 relationship between users and credential records.
type AuthModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;unique"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthModel) TableName() string {
	return "user_auths"
}

// TokenModel mirrors the 'user_tokens' table holding single-use secrets for
// email verification and password reset.
type TokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_tokens_user_type"`
	Type      string    `gorm:"type:varchar(32);not null;index:idx_user_tokens_user_type"`
	Token     string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "user_tokens"
}
