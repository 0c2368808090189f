package cache

import "context"

// FlashStore holds one-shot messages per session until they are read
type FlashStore interface {
	// Push appends a message to the session's queue
	Push(ctx context.Context, sessionID, message string) error
	// Pop returns and removes every queued message, oldest first
	Pop(ctx context.Context, sessionID string) ([]string, error)
	Close() error
}
