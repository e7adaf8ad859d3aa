package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"accounts/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitTest(t *testing.T, enabled bool, signInPerMinute, sensitivePerHour float64) *RateLimitMiddleware {
	t.Helper()

	return NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{
			Enabled:          enabled,
			SignInPerMinute:  signInPerMinute,
			SensitivePerHour: sensitivePerHour,
		},
	})
}

func hitSignIn(m *RateLimitMiddleware) int {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
	req.RemoteAddr = "203.0.113.10:44321"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.LimitSignIn(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		return http.StatusInternalServerError
	}

	return rec.Code
}

func TestRateLimitMiddleware_RejectsPastBurst(t *testing.T) {
	m := newRateLimitTest(t, true, 3, 3)

	// The burst equals the configured per-minute count; the request after it
	// must be rejected.
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hitSignIn(m))
	}

	assert.Equal(t, http.StatusTooManyRequests, hitSignIn(m))
}

func TestRateLimitMiddleware_DisabledPassesThrough(t *testing.T) {
	m := newRateLimitTest(t, false, 1, 1)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hitSignIn(m))
	}
}
