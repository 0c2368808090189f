package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			Path:           filepath.Join(t.TempDir(), "meetings.db"),
			ConnectRetries: 1,
		},
	}
	db, err := database.Open(cfg, nil)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if _, err := database.Migrate(db, cfg.Database.Driver); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestMeetingRepository_InsertAndGet(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	ctx := context.Background()

	m := &entities.Meeting{
		Filename:    "standup.mp3",
		Attendees:   "Alice, Bob",
		Transcript:  "hello world",
		Summary:     strPtr("Did X"),
		ActionItems: strPtr("Follow up"),
	}
	id, err := repo.Insert(ctx, m)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
	if m.CreatedAt == "" {
		t.Fatal("expected created_at to be stamped")
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Filename != "standup.mp3" || got.Attendees != "Alice, Bob" || got.Transcript != "hello world" {
		t.Fatalf("unexpected meeting %+v", got)
	}
	if got.Summary == nil || *got.Summary != "Did X" {
		t.Fatalf("unexpected summary %v", got.Summary)
	}
	if got.People != nil {
		t.Fatalf("expected nil people, got %q", *got.People)
	}
	if got.ActionItems == nil || *got.ActionItems != "Follow up" {
		t.Fatalf("unexpected action items %v", got.ActionItems)
	}
	if got.CreatedAt != m.CreatedAt {
		t.Fatalf("created_at changed: %q != %q", got.CreatedAt, m.CreatedAt)
	}
}

func TestMeetingRepository_ListAllNewestFirst(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"a.mp3", "b.wav", "c.ogg"} {
		if _, err := repo.Insert(ctx, entities.NewMeeting(name, "", "t")); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	items, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	wantIDs := []int64{3, 2, 1}
	for i, item := range items {
		if item.ID != wantIDs[i] {
			t.Fatalf("item %d: expected id %d, got %d", i, wantIDs[i], item.ID)
		}
	}
	if items[0].Filename != "c.ogg" {
		t.Fatalf("unexpected newest filename %q", items[0].Filename)
	}
}

func TestMeetingRepository_ListAllEmpty(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))

	items, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestMeetingRepository_GetByIDNotFound(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, entities.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}
