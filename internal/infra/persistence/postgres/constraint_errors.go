package postgres

import (
	"strings"

	domainerrors "accounts/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// TranslateError is enabled on the gorm.Config, so unique violations
	// surface as gorm.ErrDuplicatedKey regardless of driver.
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// translateUniqueViolation maps a unique constraint violation to the domain
// error for the column that collided. The constraint name appears in the
// driver's error message, so a substring check is enough to tell the two
// unique columns apart.
func translateUniqueViolation(err error) error {
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "username"):
		return domainerrors.ErrUsernameTaken
	case strings.Contains(errMsg, "email"):
		return domainerrors.ErrEmailAlreadyExists
	default:
		return domainerrors.ErrConflict
	}
}
