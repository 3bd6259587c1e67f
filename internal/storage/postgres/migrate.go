package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationResult reports the schema state after Migrate.
type MigrationResult struct {
	Version  uint
	Dirty    bool
	NoChange bool
}

// Migrate applies the embedded schema migrations to the database at dsn.
// steps of 0 migrates all the way in the given direction; a positive count
// moves that many versions.
//
// Precondition: direction is "up" or "down"; steps >= 0.
// Postcondition: Returns the resulting version, or a non-nil error.
func Migrate(dsn, direction string, steps int) (MigrationResult, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return MigrationResult{}, fmt.Errorf("opening embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	switch direction {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	default:
		return MigrationResult{}, fmt.Errorf("invalid direction %q: must be 'up' or 'down'", direction)
	}

	noChange := errors.Is(err, migrate.ErrNoChange)
	if err != nil && !noChange {
		return MigrationResult{}, fmt.Errorf("migrating %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return MigrationResult{}, fmt.Errorf("reading schema version: %w", verr)
	}
	return MigrationResult{Version: version, Dirty: dirty, NoChange: noChange}, nil
}
