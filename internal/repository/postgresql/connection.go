package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/transcript_extractor/internal/config"
)

const (
	applicationName = "transcript_extractor"
	maxConns        = 8

	pingRetries = 5
	pingDelay   = 2 * time.Second
)

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(connectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	ping := WithRetry(log, pool.Ping, pingRetries, pingDelay)
	if err := ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return pool, nil
}

func connectionURL(cfg config.PostgreSQL) string {
	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: "sslmode=disable",
	}).String()
}

type Operation func(context.Context) error

// WithRetry calls op up to retries+1 times, waiting delay between failed attempts.
func WithRetry(log *slog.Logger, op Operation, retries int, delay time.Duration) Operation {
	return func(ctx context.Context) error {
		for attempt := 1; ; attempt++ {
			err := op(ctx)
			if err == nil || attempt > retries {
				return err
			}

			log.DebugContext(ctx, "database operation failed, retrying",
				slog.Int("attempt", attempt),
				slog.Int("max_retries", retries),
				slog.String("err", err.Error()),
			)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
