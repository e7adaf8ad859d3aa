// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"accounts/config"
	"accounts/internal/domain/service"
)

// insecureDefaultSecret keeps local development working when no secret is
// configured. Running with it in production is a deployment misconfiguration,
// which the constructor logs loudly.
const insecureDefaultSecret = "insecure-development-secret-do-not-deploy"

// jwtService is a concrete implementation of the SessionService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Symmetric secret for signing session tokens.
	expiry time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.SessionService, error) {
	if cfg == nil || cfg.JWT == nil {
		return nil, errors.New("jwt configuration must be provided")
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		logger.Warn("JWT secret not configured, falling back to the insecure built-in default")
		secret = insecureDefaultSecret
	}

	return &jwtService{
		secret: []byte(secret),
		expiry: cfg.JWT.Expiry,
	}, nil
}

// Issue signs a new session token asserting the given identity.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &service.SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the validity of a token string and returns its claims.
// Validation is purely computational against the in-memory secret; no store
// lookup happens here.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}

	return claims, nil
}
