package storage

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// ErrFileNotFound is returned when a stored file does not exist
var ErrFileNotFound = errors.New("file not found")

// sniffLen is how many leading bytes are inspected to detect a content type
const sniffLen = 3072

// FileStore persists uploaded audio files by name
type FileStore interface {
	// Save writes r under name, replacing any existing file with the same name.
	// size may be -1 when unknown.
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Open returns the stored file or ErrFileNotFound
	Open(ctx context.Context, name string) (*Object, error)
}

// Object is an opened stored file. Callers must Close it.
type Object struct {
	io.ReadCloser
	Name        string
	Size        int64
	ContentType string
}

// SniffContentType detects the content type of r from its leading bytes and
// returns a reader that still yields the full content
func SniffContentType(r io.Reader) (string, io.Reader, error) {
	header := make([]byte, sniffLen)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, err
	}
	header = header[:n]

	return mimetype.Detect(header).String(), io.MultiReader(bytes.NewReader(header), r), nil
}
