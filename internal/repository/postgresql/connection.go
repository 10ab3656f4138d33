package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/pdf_compressor/internal/config"
)

const (
	defaultConnectRetries = 5
	defaultRetryDelay     = 5 * time.Second
)

// NewConnection opens the history pool and waits for the database to answer.
func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	connectionURL := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: "sslmode=disable",
	}

	pool, err := pgxpool.New(ctx, connectionURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	retries, delay := cfg.ConnectRetries, cfg.RetryDelay
	if retries < 0 {
		retries = defaultConnectRetries
	}
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	log = log.With(
		slog.String("postgresql_host", cfg.Host),
		slog.String("postgresql_dbname", cfg.DBName),
	)

	if err := Retry(log, pool.Ping, retries, delay)(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return pool, nil
}

type PingFunction func(context.Context) error

// Retry makes ping try up to retries more times, delay apart, before giving up.
func Retry(log *slog.Logger, ping PingFunction, retries int, delay time.Duration) PingFunction {
	return func(ctx context.Context) error {
		for attempt := 0; ; attempt++ {
			err := ping(ctx)
			if err == nil || attempt >= retries {
				return err
			}

			log.WarnContext(ctx, "compression history database is not ready, retrying",
				slog.Int("attempt", attempt+1),
				slog.Int("max_retries", retries),
				slog.Duration("delay", delay),
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
