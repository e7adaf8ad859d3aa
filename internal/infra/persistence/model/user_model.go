package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Auth    *AuthModel    `gorm:"foreignKey:UserID"`
	Profile *ProfileModel `gorm:"foreignKey:UserID"`
	Tokens  []TokenModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'user_profiles' table. UserID references users.id (UUID).
type ProfileModel struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username           string    `gorm:"type:varchar(30);uniqueIndex:idx_profiles_username,where:username <> ''"`
	EmailVerified      bool      `gorm:"not null;default:false"`
	OnboardingComplete bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_profiles"
}
