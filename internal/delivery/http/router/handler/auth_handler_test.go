package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	mockUC "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandlerTest(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := &AuthHandler{
		uc:         uc,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionTTL: 30 * 24 * time.Hour,
	}

	return handler, uc
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	userID := uuid.New()
	uc.EXPECT().
		SignUp(mock.Anything, usecase.SignUpInput{
			Email:    "new@example.com",
			Password: "Password123!",
			Name:     "New User",
		}).
		Return(&usecase.SignUpOutput{
			User:         &entity.UserSummary{ID: userID, Email: "new@example.com", Name: "New User"},
			SessionToken: "session-token",
			Message:      "Verification email sent",
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/sign-up",
		`{"email":"new@example.com","password":"Password123!","name":"New User"}`)

	require.NoError(t, handler.SignUp(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Verification email sent")
	assert.Contains(t, rec.Body.String(), "session-token")

	assert.Equal(t, "Bearer session-token", rec.Header().Get("Authorization"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "session-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_SignUp_NoCookieWithoutToken(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	uc.EXPECT().
		SignUp(mock.Anything, mock.AnythingOfType("usecase.SignUpInput")).
		Return(&usecase.SignUpOutput{
			User:    &entity.UserSummary{ID: uuid.New(), Email: "new@example.com"},
			Message: "Verification email sent",
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/sign-up",
		`{"email":"new@example.com","password":"Password123!"}`)

	require.NoError(t, handler.SignUp(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.NotContains(t, rec.Body.String(), `"token"`)
}

func TestAuthHandler_SignUp_PropagatesUsecaseError(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	uc.EXPECT().
		SignUp(mock.Anything, mock.AnythingOfType("usecase.SignUpInput")).
		Return(nil, domainerrors.ErrEmailAlreadyExists)

	c, _ := newJSONContext(http.MethodPost, "/auth/sign-up",
		`{"email":"taken@example.com","password":"Password123!"}`)

	err := handler.SignUp(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthHandler_SignIn(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	uc.EXPECT().
		SignIn(mock.Anything, usecase.SignInInput{
			Email:    "user@example.com",
			Password: "Password123!",
		}).
		Return(&usecase.SignInOutput{
			User:         &entity.UserSummary{ID: uuid.New(), Email: "user@example.com", EmailVerified: true},
			SessionToken: "session-token",
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/sign-in",
		`{"email":"user@example.com","password":"Password123!"}`)

	require.NoError(t, handler.SignIn(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign-in successful")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session-token", cookies[0].Value)
}

func TestAuthHandler_VerifyToken_FromHeader(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	uc.EXPECT().
		VerifyToken(mock.Anything, "Bearer session-token").
		Return(&usecase.VerifyTokenOutput{Valid: true}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.VerifyToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)
}

func TestAuthHandler_VerifyToken_FallsBackToCookie(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	uc.EXPECT().
		VerifyToken(mock.Anything, "cookie-token").
		Return(&usecase.VerifyTokenOutput{Valid: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.VerifyToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	token := uuid.NewString()
	uc.EXPECT().
		VerifyEmail(mock.Anything, usecase.VerifyEmailInput{Token: token}).
		Return(&usecase.MessageOutput{Message: "Email verified"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/verify-email", `{"token":"`+token+`"}`)

	require.NoError(t, handler.VerifyEmail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email verified")
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	uc.EXPECT().
		RequestPasswordReset(mock.Anything, usecase.RequestPasswordResetInput{Email: "user@example.com"}).
		Return(&usecase.MessageOutput{Message: "Password reset email sent"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/forgot-password", `{"email":"user@example.com"}`)

	require.NoError(t, handler.ForgotPassword(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password reset email sent")
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	token := uuid.NewString()
	uc.EXPECT().
		ResetPassword(mock.Anything, usecase.ResetPasswordInput{
			Token:       token,
			NewPassword: "NewPassword123!",
		}).
		Return(&usecase.MessageOutput{Message: "Password reset successful"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/reset-password",
		`{"token":"`+token+`","newPassword":"NewPassword123!"}`)

	require.NoError(t, handler.ResetPassword(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password reset successful")
}

func TestAuthHandler_ResendVerification(t *testing.T) {
	handler, uc := newAuthHandlerTest(t)

	uc.EXPECT().
		ResendVerificationEmail(mock.Anything, usecase.ResendVerificationInput{Email: "user@example.com"}).
		Return(&usecase.MessageOutput{Message: "Verification email sent"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/resend-verification", `{"email":"user@example.com"}`)

	require.NoError(t, handler.ResendVerification(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Verification email sent")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
