// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"accounts/config"
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	logger       *slog.Logger
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		logger:       logger,
		sessionTTL:   cfg.JWT.Expiry,
		secureCookie: !cfg.Env.Debug,
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// SignUp handles the account creation request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{"user": output.User}
	if output.SessionToken != "" {
		h.setSessionCookie(c, output.SessionToken)
		payload["token"] = output.SessionToken
	}

	return response.Success(c, http.StatusCreated, payload, output.Message)
}

// SignIn handles the sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"token": output.SessionToken,
		"user":  output.User,
	}, "Sign-in successful")
}

// VerifyToken reports whether the presented session token is valid. The token
// comes from the Authorization header, falling back to the session cookie.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	tokenString := c.Request().Header.Get("Authorization")
	if tokenString == "" {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
			tokenString = cookie.Value
		}
	}

	output, err := h.uc.VerifyToken(c.Request().Context(), tokenString)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"valid": output.Valid}, "Token checked")
}

// VerifyEmail consumes an email verification token.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	output, err := h.uc.VerifyEmail(c.Request().Context(), usecase.VerifyEmailInput{Token: req.Token})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, output.Message)
}

// ResendVerification re-sends the verification link.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}

	output, err := h.uc.ResendVerificationEmail(c.Request().Context(), usecase.ResendVerificationInput{Email: req.Email})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, output.Message)
}

// ForgotPassword starts the password reset flow.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request input")
	}

	output, err := h.uc.RequestPasswordReset(c.Request().Context(), usecase.RequestPasswordResetInput{Email: req.Email})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, output.Message)
}

// ResetPassword completes the password reset flow.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}

	output, err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, output.Message)
}

// setSessionCookie hands the session token to both client kinds: browsers get
// the httpOnly cookie, API clients read the Authorization response header.
func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.Response().Header().Set("Authorization", "Bearer "+token)
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		Secure:   h.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
