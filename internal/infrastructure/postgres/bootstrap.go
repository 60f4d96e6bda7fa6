package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskgo/task-service/internal/config"
	"github.com/taskgo/task-service/pkg/retry"
)

// Bootstrap brings the database to a serviceable state before the HTTP
// listener starts: it connects the pool and applies migrations under a
// bounded fixed-delay retry policy. Connection-refused and not-ready errors
// from a database that is still coming up are transient; so is anything else
// short of context cancellation, which aborts immediately. Exhausting the
// policy is fatal to startup.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	policy := retry.Policy{
		Attempts: cfg.Database.ConnectAttempts,
		Delay:    cfg.Database.ConnectDelay,
		OnRetry: func(attempt int, err error) {
			logger.Warn("database not ready, retrying",
				zap.Int("attempt", attempt),
				zap.Int("attempts", cfg.Database.ConnectAttempts),
				zap.Duration("delay", cfg.Database.ConnectDelay),
				zap.Error(err),
			)
		},
	}

	var pool *pgxpool.Pool
	err := policy.Do(ctx, func(ctx context.Context) error {
		p, err := NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		if err := RunMigrations(cfg, logger); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	}, retry.Transient)
	if err != nil {
		return nil, err
	}

	return pool, nil
}
