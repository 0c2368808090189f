package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Fatalf("unexpected port %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" || cfg.GetDatabaseDSN() != "meetings.db" {
		t.Fatalf("unexpected database config %+v", cfg.Database)
	}
	want := []string{"mp3", "wav", "m4a", "flac", "ogg"}
	if !reflect.DeepEqual(cfg.Upload.AllowedExtensions, want) {
		t.Fatalf("unexpected extensions %v", cfg.Upload.AllowedExtensions)
	}
	if cfg.AI.MaxPoints != 6 {
		t.Fatalf("unexpected max points %d", cfg.AI.MaxPoints)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("UPLOAD_ALLOWED_EXTENSIONS", "MP3, Wav")
	t.Setenv("AI_SUMMARY_PROVIDER", "openai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.GetServerAddr() != "0.0.0.0:9090" {
		t.Fatalf("unexpected addr %s", cfg.GetServerAddr())
	}
	if dsn := cfg.GetDatabaseDSN(); dsn != "host=db.internal port=5432 user=postgres password=postgres dbname=meeting_minutes sslmode=disable" {
		t.Fatalf("unexpected dsn %s", dsn)
	}
	if !reflect.DeepEqual(cfg.Upload.AllowedExtensions, []string{"mp3", "wav"}) {
		t.Fatalf("unexpected extensions %v", cfg.Upload.AllowedExtensions)
	}
	if cfg.AI.SummaryProvider != "openai" {
		t.Fatalf("unexpected provider %s", cfg.AI.SummaryProvider)
	}
}

func TestValidate_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("AI_TRANSCRIPTION_PROVIDER", "whisper")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("SERVER_ENVIRONMENT", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for default secret in production")
	}

	t.Setenv("SECRET_KEY", "s3cret")
	if _, err := Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
