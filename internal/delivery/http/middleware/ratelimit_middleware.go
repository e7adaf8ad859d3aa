package middleware

import (
	"time"

	"accounts/config"
	"accounts/internal/delivery/http/response"

	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware bounds abuse of the authentication endpoints per caller
// IP. Sign-in gets its own, tighter window than the email-sending routes.
type RateLimitMiddleware struct {
	enabled   bool
	signIn    *limiter.Limiter
	sensitive *limiter.Limiter
}

// NewRateLimitMiddleware creates the limiters from configuration.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rl := cfg.RateLimit

	signIn := tollbooth.NewLimiter(rl.SignInPerMinute/60.0, &limiter.ExpirableOptions{
		DefaultExpirationTTL: time.Hour,
	})
	signIn.SetBurst(int(rl.SignInPerMinute))

	sensitive := tollbooth.NewLimiter(rl.SensitivePerHour/3600.0, &limiter.ExpirableOptions{
		DefaultExpirationTTL: 2 * time.Hour,
	})
	sensitive.SetBurst(int(rl.SensitivePerHour))

	return &RateLimitMiddleware{
		enabled:   rl.Enabled,
		signIn:    signIn,
		sensitive: sensitive,
	}
}

// LimitSignIn applies the per-minute sign-in limit.
func (m *RateLimitMiddleware) LimitSignIn(next echo.HandlerFunc) echo.HandlerFunc {
	return m.limit(m.signIn, next)
}

// LimitSensitive applies the per-hour limit shared by sign-up,
// resend-verification and forgot-password.
func (m *RateLimitMiddleware) LimitSensitive(next echo.HandlerFunc) echo.HandlerFunc {
	return m.limit(m.sensitive, next)
}

func (m *RateLimitMiddleware) limit(lmt *limiter.Limiter, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		if httpErr := tollbooth.LimitByRequest(lmt, c.Response(), c.Request()); httpErr != nil {
			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, please try again later")
		}

		return next(c)
	}
}
