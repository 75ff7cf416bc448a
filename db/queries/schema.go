package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.hackfix.me/ledger/db/types"
)

// Tables returns the names of all tables in the database that contain user data.
func Tables(ctx context.Context, d types.Querier) (map[string]struct{}, error) {
	tables := make(map[string]struct{})
	rows, err := d.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, err
	}

	for rows.Next() {
		var name string
		err = rows.Scan(&name)
		if err != nil {
			return nil, err
		}

		// Exclude internal tables
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, "sqlite_") {
			continue
		}
		tables[name] = struct{}{}
	}

	return tables, nil
}

// TableSchema returns the statement the named table was created with. If the
// returned sql.Null value is invalid, it indicates that the table doesn't
// exist.
func TableSchema(ctx context.Context, d types.Querier, name string) (sql.Null[string], error) {
	var schema sql.Null[string]
	err := d.QueryRowContext(ctx,
		`SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?`, name).
		Scan(&schema)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return schema, err
	}

	return schema, nil
}
