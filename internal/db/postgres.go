package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

type PostgresOpts struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// NewPostgresConnection opens a *sqlx.DB over the pgx stdlib driver with
// sensible pool/timeouts. An empty URL is a configuration error, not a
// per-query one.
func NewPostgresConnection(url string, opts PostgresOpts) (*sqlx.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("empty DATABASE_URL")
	}
	pg, err := sqlx.Open("pgx", url)
	if err != nil {
		return nil, err
	}

	if opts.MaxOpenConns > 0 {
		pg.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		pg.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		pg.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	if opts.ConnMaxIdleTime > 0 {
		pg.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := pg.PingContext(ctx); err != nil {
		_ = pg.Close()
		return nil, err
	}

	return pg, nil
}
