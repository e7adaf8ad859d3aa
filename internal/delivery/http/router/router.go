// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimit:      params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp, r.rateLimit.LimitSensitive)
		authGroup.POST("/sign-in", r.authHandler.SignIn, r.rateLimit.LimitSignIn)
		authGroup.GET("/verify", r.authHandler.VerifyToken)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification, r.rateLimit.LimitSensitive)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword, r.rateLimit.LimitSensitive)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Routes that require an authenticated session
	sessionGroup := e.Group("/auth")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.POST("/onboarding", r.profileHandler.CompleteOnboarding)
		sessionGroup.GET("/me", r.profileHandler.Me)
	}
}
