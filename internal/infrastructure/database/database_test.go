package database

import (
	"path/filepath"
	"testing"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			Path:           filepath.Join(t.TempDir(), "meetings.db"),
			ConnectRetries: 1,
		},
	}
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer Close(db)

	n, err := Migrate(db, cfg.Database.Driver)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 migration applied, got %d", n)
	}

	if !db.Migrator().HasTable("meetings") {
		t.Fatal("expected meetings table")
	}

	// A second run is a no-op
	n, err = Migrate(db, cfg.Database.Driver)
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no migrations on second run, got %d", n)
	}

	n, err = Rollback(db, cfg.Database.Driver)
	if err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 migration rolled back, got %d", n)
	}
	if db.Migrator().HasTable("meetings") {
		t.Fatal("expected meetings table to be dropped")
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "mysql"

	if _, err := Open(cfg, nil); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestMigrationsFor(t *testing.T) {
	dialect, _, err := migrationsFor("postgres")
	if err != nil || dialect != "postgres" {
		t.Fatalf("unexpected postgres dialect %q, %v", dialect, err)
	}
	dialect, _, err = migrationsFor("sqlite")
	if err != nil || dialect != "sqlite3" {
		t.Fatalf("unexpected sqlite dialect %q, %v", dialect, err)
	}
}
