package database

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

const createMeetingsSQLite = `CREATE TABLE IF NOT EXISTS meetings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    attendees TEXT,
    transcript TEXT,
    summary TEXT,
    people TEXT,
    action_items TEXT,
    created_at TEXT
);`

const createMeetingsPostgres = `CREATE TABLE IF NOT EXISTS meetings (
    id BIGSERIAL PRIMARY KEY,
    filename TEXT NOT NULL,
    attendees TEXT,
    transcript TEXT,
    summary TEXT,
    people TEXT,
    action_items TEXT,
    created_at TEXT
);`

// migrationsFor returns the sql-migrate dialect and the schema source for a driver
func migrationsFor(driver string) (string, migrate.MigrationSource, error) {
	var dialect, up string
	switch driver {
	case "sqlite":
		dialect, up = "sqlite3", createMeetingsSQLite
	case "postgres":
		dialect, up = "postgres", createMeetingsPostgres
	default:
		return "", nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return dialect, &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id:   "0001_create_meetings",
				Up:   []string{up},
				Down: []string{"DROP TABLE IF EXISTS meetings;"},
			},
		},
	}, nil
}
