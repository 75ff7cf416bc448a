// Package migrate defines the database schema migrations and assembles them
// into the ordered plan applied by an external migration runner.
//
// Migrations are hard-coded literals, one per schema change, so the full set
// is known at compile time. The package never executes any of the scripts
// itself.
package migrate

import (
	"cmp"
	"fmt"
	"slices"
)

// Direction indicates whether a migration advances or reverts the schema.
type Direction uint8

// Valid migration directions.
const (
	MigrationUp Direction = iota
	MigrationDown
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case MigrationUp:
		return "up"
	case MigrationDown:
		return "down"
	default:
		return "unknown"
	}
}

// Migration describes a single versioned schema change. The script is an
// opaque SQL payload; it is interpreted only by the runner that applies it.
type Migration struct {
	Version     uint64
	Description string
	Script      string
	Direction   Direction
}

// DuplicateVersionError is returned when two migrations share a version.
// Versions double as idempotency markers for the runner, so a duplicate is a
// programming error, not a runtime condition.
type DuplicateVersionError struct {
	Version     uint64
	Description string
}

// Error returns a string representation of the error.
func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("duplicate migration version %d (%s)", e.Version, e.Description)
}

// Collect returns every known migration sorted by version in ascending
// order. When strict is true, it also verifies that no two migrations share
// a version, returning a *DuplicateVersionError naming the offender. The
// result is recomputed on every call and is the same for a given binary.
func Collect(strict bool) ([]*Migration, error) {
	return collect(registered(), strict)
}

func collect(migrations []*Migration, strict bool) ([]*Migration, error) {
	slices.SortStableFunc(migrations, func(a, b *Migration) int {
		return cmp.Compare(a.Version, b.Version)
	})

	if strict {
		seen := make(map[uint64]struct{}, len(migrations))
		for _, m := range migrations {
			if _, ok := seen[m.Version]; ok {
				return nil, &DuplicateVersionError{
					Version:     m.Version,
					Description: m.Description,
				}
			}
			seen[m.Version] = struct{}{}
		}
	}

	return migrations, nil
}
