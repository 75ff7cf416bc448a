package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	//nolint:revive,nolintlint // Idiomatic way of loading DB libraries.
	_ "github.com/glebarez/go-sqlite"

	"go.hackfix.me/ledger/db/migrate"
	"go.hackfix.me/ledger/db/types"
)

// DB wraps sql.DB with additional context and the schema migrations an
// external runner is expected to apply to it.
type DB struct {
	*sql.DB
	ctx        context.Context
	timeNow    func() time.Time
	path       string
	migrations []*migrate.Migration
}

var _ types.Querier = (*DB)(nil)

// Open creates and configures a new SQLite database connection, and collects
// the schema migrations for it. Migrations are not executed here; that is
// the runner's responsibility.
func Open(
	ctx context.Context, path string, timeNow func() time.Time, logger *slog.Logger,
) (*DB, error) {
	var d *DB
	if strings.Contains(path, "mode=memory") || strings.Contains(path, ":memory:") {
		defer func() {
			if d != nil {
				// See https://github.com/mattn/go-sqlite3#faq
				d.SetMaxIdleConns(10)
				d.SetConnMaxLifetime(time.Duration(math.Inf(1)))
			}
		}()
	}

	sqliteDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed opening SQLite database: %w", err)
	}

	d = &DB{DB: sqliteDB, ctx: ctx, path: path, timeNow: timeNow}

	// Enable foreign key enforcement
	_, err = d.Exec(`PRAGMA foreign_keys = ON;`)
	if err != nil {
		return nil, fmt.Errorf("failed enabling foreign key enforcement: %w", err)
	}

	migrations, err := migrate.Collect(true)
	if err != nil {
		return nil, err
	}
	d.migrations = migrations

	logger.With("path", path).
		Debug("database opened", "migrations", len(migrations))

	return d, nil
}

// Migrations returns the schema migrations in the order they must be applied.
func (d *DB) Migrations() []*migrate.Migration {
	return d.migrations
}

// NewContext returns a new child context of the main database context.
func (d *DB) NewContext() context.Context {
	// TODO: Return cancel func?
	ctx, _ := context.WithCancel(d.ctx) //nolint:govet // I'll handle this later...
	return ctx
}

// TimeNow returns the current system time.
func (d *DB) TimeNow() time.Time {
	return d.timeNow()
}
