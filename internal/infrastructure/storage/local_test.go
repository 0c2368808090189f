package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("new local store: %v", err)
	}
	return store
}

func readAll(t *testing.T, obj *Object) string {
	t.Helper()
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func TestLocalStore_SaveAndOpen(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	content := "ID3\x03\x00\x00\x00\x00\x00\x00fake mp3 payload"
	if err := store.Save(ctx, "a.mp3", strings.NewReader(content), int64(len(content)), "audio/mpeg"); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(store.dir, "a.mp3")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}

	obj, err := store.Open(ctx, "a.mp3")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if obj.Size != int64(len(content)) {
		t.Fatalf("unexpected size %d", obj.Size)
	}
	if obj.ContentType != "audio/mpeg" {
		t.Fatalf("unexpected content type %q", obj.ContentType)
	}
	if got := readAll(t, obj); got != content {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestLocalStore_SaveOverwrites(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "a.wav", strings.NewReader("first version"), -1, ""); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(ctx, "a.wav", strings.NewReader("second"), -1, ""); err != nil {
		t.Fatalf("second save: %v", err)
	}

	obj, err := store.Open(ctx, "a.wav")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := readAll(t, obj); got != "second" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store := newTestLocalStore(t)

	_, err := store.Open(context.Background(), "missing.mp3")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "..", "../escape.mp3", `..\escape.mp3`, "sub/file.mp3"} {
		if err := store.Save(ctx, name, strings.NewReader("x"), 1, ""); err == nil {
			t.Fatalf("expected save of %q to fail", name)
		}
		if _, err := store.Open(ctx, name); !errors.Is(err, ErrFileNotFound) {
			t.Fatalf("expected open of %q to be not found, got %v", name, err)
		}
	}
}

func TestSniffContentType(t *testing.T) {
	content := "just some plain text"

	ct, r, err := SniffContentType(strings.NewReader(content))
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != content {
		t.Fatalf("sniffing consumed content: %q", data)
	}
}
