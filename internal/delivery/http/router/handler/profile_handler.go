package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers on authenticated routes.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type onboardingRequest struct {
	Username string `json:"username"`
}

// CompleteOnboarding records the chosen username for the authenticated user.
func (h *ProfileHandler) CompleteOnboarding(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_INVALID", "Invalid user ID in session")
	}

	var req onboardingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}

	output, err := h.uc.CompleteOnboarding(c.Request().Context(), usecase.CompleteOnboardingInput{
		UserID:   userID,
		Username: req.Username,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": output.User}, "Onboarding completed")
}

// Me returns the account view for the authenticated user.
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_TOKEN_INVALID", "Invalid user ID in session")
	}

	output, err := h.uc.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":               output.User,
		"username":           output.Username,
		"onboardingComplete": output.OnboardingComplete,
	}, "Account retrieved")
}

// currentUserID pulls the authenticated user ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
