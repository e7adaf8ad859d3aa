package impl

import (
	"context"
	"log/slog"
	"time"

	"accounts/config"
	"accounts/internal/domain/repository"

	"go.uber.org/fx"
)

// TokenCleanupParams holds dependencies for the expired-token sweeper.
type TokenCleanupParams struct {
	fx.In
	fx.Lifecycle

	TokenRepo repository.TokenRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// RunTokenCleanup registers a background sweep that removes expired
// single-use tokens. Expired tokens are already inert, so the sweep only
// keeps the table from growing without bound. A zero interval disables it.
func RunTokenCleanup(params TokenCleanupParams) {
	interval := time.Duration(0)
	if params.Config != nil && params.Config.Auth != nil {
		interval = params.Config.Auth.TokenCleanupInterval
	}

	if interval <= 0 {
		params.Logger.Info("Token cleanup disabled")

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sweep(ctx, done, interval, params.TokenRepo, params.Logger)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done

			return nil
		},
	})
}

func sweep(ctx context.Context, done chan<- struct{}, interval time.Duration, tokenRepo repository.TokenRepository, logger *slog.Logger) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := tokenRepo.DeleteExpired(ctx)
			if err != nil {
				logger.Error("Token cleanup sweep failed", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				logger.Info("Removed expired tokens", slog.Int64("count", removed))
			}
		}
	}
}
