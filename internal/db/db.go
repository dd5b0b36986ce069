// Package db persists and queries match records in a relational database.
//
// A Store wraps a single database/sql connection. Every insert runs in its own
// transaction; a failed insert is rolled back and the Store stays usable.
// Failures are returned as *Error, matchable with errors.Is against
// ErrNotFound, ErrConstraintViolation and ErrConnection.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"riftstats/internal/config"
)

// Store runs the statements of the match schema over one connection
type Store struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for rollback failures and migrations
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Open connects to the configured database and verifies the connection
func Open(ctx context.Context, cfg config.DatabaseConfig, opts ...Option) (*Store, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN()
	if cfg.Driver == config.DriverSQLite && !strings.Contains(dsn, "_pragma=foreign_keys") {
		dsn = withQuery(dsn, "_pragma=foreign_keys(1)")
	}

	sqlDB, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, &Error{Op: "Open", Kind: KindConnection, Err: fmt.Errorf("failed to open %s: %w", cfg.Driver, err)}
	}

	s := New(sqlDB, d, opts...)
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, &Error{Op: "Open", Kind: KindConnection, Err: fmt.Errorf("failed to ping database: %w", err)}
	}
	return s, nil
}

// New wraps an already opened handle. The handle is limited to a single
// connection; this also keeps an in-memory sqlite database alive.
func New(sqlDB *sql.DB, d Dialect, opts ...Option) *Store {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	s := &Store{
		db:      sqlDB,
		dialect: d,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying handle for custom queries
func (s *Store) DB() *sql.DB {
	return s.db
}

func withQuery(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// exec runs one statement in its own transaction
func (s *Store) exec(ctx context.Context, op, query string, args ...any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return newError(op, fmt.Errorf("failed to begin transaction: %w", err))
	}

	if _, err := tx.ExecContext(ctx, s.dialect.rebind(query), args...); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Warn("rollback failed", "op", op, "error", rbErr)
		}
		return newError(op, err)
	}

	if err := tx.Commit(); err != nil {
		return newError(op, fmt.Errorf("failed to commit: %w", err))
	}
	return nil
}

// queryRow scans exactly one row into dest; no row is ErrNotFound
func (s *Store) queryRow(ctx context.Context, op, query string, args []any, dest ...any) error {
	err := s.db.QueryRowContext(ctx, s.dialect.rebind(query), args...).Scan(dest...)
	if err != nil {
		return newError(op, err)
	}
	return nil
}

// query runs a multi-row select and calls scan for every row
func (s *Store) query(ctx context.Context, op, query string, args []any, scan func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return newError(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return newError(op, err)
		}
	}
	if err := rows.Err(); err != nil {
		return newError(op, err)
	}
	return nil
}
