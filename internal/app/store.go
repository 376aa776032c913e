package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	appdb "github.com/Flarenzy/simple-ipam/internal/db"
	"github.com/Flarenzy/simple-ipam/internal/db/sqlc"
	"github.com/Flarenzy/simple-ipam/internal/db/sqlite"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

// store is the persistence handle for one process lifetime. Close must be
// called exactly once on shutdown.
type store struct {
	subnets domain.SubnetRepository
	ips     domain.IPRepository
	ping    func(context.Context) error
	close   func()
}

func (s *store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func openStore(ctx context.Context, cfg Config, logger *slog.Logger) (*store, error) {
	if path, ok := cfg.SQLitePath(); ok {
		return openSQLite(ctx, path, logger)
	}
	return openPostgres(ctx, cfg, logger)
}

func openSQLite(ctx context.Context, path string, logger *slog.Logger) (*store, error) {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "using sqlite backend", "path", path)

	return &store{
		subnets: db.Subnets(),
		ips:     db.IPs(),
		ping:    db.Ping,
		close: func() {
			if err := db.Close(); err != nil {
				logger.Error("closing sqlite", "err", err.Error())
			}
		},
	}, nil
}

func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*store, error) {
	pool, err := appdb.NewPool(ctx, appdb.PoolConfig{
		DSN:            cfg.DatabaseURL,
		MaxConns:       int32(cfg.DBMaxConns),
		MinConns:       int32(cfg.DBMinConns),
		ConnectTimeout: cfg.DBConnectTimeout,
		MaxConnIdle:    cfg.DBMaxConnIdle,
	})
	if err != nil {
		return nil, err
	}

	if err := waitForDB(ctx, pool.Ping, cfg.DBConnectRetries, cfg.DBConnectRetryDelay, logger); err != nil {
		pool.Close()
		return nil, err
	}
	if err := appdb.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.InfoContext(ctx, "using postgres backend", "max_conns", cfg.DBMaxConns)

	queries := sqlc.New(pool)
	return &store{
		subnets: appdb.NewSubnetRepository(queries),
		ips:     appdb.NewIPRepository(queries),
		ping:    pool.Ping,
		close:   pool.Close,
	}, nil
}

// waitForDB pings with a constant delay, giving up after retries extra attempts.
func waitForDB(ctx context.Context, ping func(context.Context) error, retries int, delay time.Duration, logger *slog.Logger) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(retries)),
		ctx,
	)

	err := backoff.RetryNotify(func() error {
		return ping(ctx)
	}, policy, func(err error, next time.Duration) {
		logger.WarnContext(ctx, "database not reachable, retrying", "err", err.Error(), "retry_in", next)
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	return nil
}
