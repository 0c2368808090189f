package meeting

import (
	"fmt"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// StorageError reports that the uploaded file could not be stored or read back
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed insert. Meeting holds the processed but
// unsaved result so it can still be shown to the user.
type PersistenceError struct {
	Meeting *entities.Meeting
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save meeting: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
