package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// LocalStore keeps files in a directory on the local file system
type LocalStore struct {
	dir string
}

var _ FileStore = (*LocalStore)(nil)

// NewLocalStore creates the upload directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the file, overwriting any previous file with the same name
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Open opens a stored file for reading
func (s *LocalStore) Open(ctx context.Context, name string) (*Object, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, ErrFileNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrFileNotFound
	}

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to detect content type: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}

	return &Object{
		ReadCloser:  f,
		Name:        name,
		Size:        info.Size(),
		ContentType: mt.String(),
	}, nil
}

// path resolves name inside the store root, rejecting anything that would
// escape it
func (s *LocalStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
