package errors

import "errors"

// Upload validation errors
var (
	ErrNoFilePart          = errors.New("no file part")
	ErrNoSelectedFile      = errors.New("no selected file")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)
