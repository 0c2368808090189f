package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a simple in-memory flash store with expiration
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]*memoryItem
	ttl   time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

type memoryItem struct {
	messages   []string
	expireTime time.Time
}

var _ FlashStore = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory store whose queues expire ttl after
// their last write
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(5 * time.Minute)

	return store
}

// Push appends a message and refreshes the expiration
func (ms *MemoryStore) Push(_ context.Context, sessionID, message string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item, exists := ms.items[sessionID]
	if !exists || time.Now().After(item.expireTime) {
		item = &memoryItem{}
		ms.items[sessionID] = item
	}
	item.messages = append(item.messages, message)
	item.expireTime = time.Now().Add(ms.ttl)
	return nil
}

// Pop returns the queued messages (nil if none or expired) and clears them
func (ms *MemoryStore) Pop(_ context.Context, sessionID string) ([]string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item, exists := ms.items[sessionID]
	if !exists {
		return nil, nil
	}
	delete(ms.items, sessionID)

	// Check if expired
	if time.Now().After(item.expireTime) {
		return nil, nil
	}
	return item.messages, nil
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() error {
	ms.stopOnce.Do(func() { close(ms.stop) })
	return nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.removeExpired(time.Now())
		}
	}
}

func (ms *MemoryStore) removeExpired(now time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for key, item := range ms.items {
		if now.After(item.expireTime) {
			delete(ms.items, key)
		}
	}
}
