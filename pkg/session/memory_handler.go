package session

import (
	"context"
	"sync"
	"time"
)

// MemorySaveHandlerName is the save handler name reported by MemoryHandler.
const MemorySaveHandlerName = "memory"

type memoryEntry struct {
	data      string
	updatedAt time.Time
}

// MemoryHandler implements TimestampHandler using in-memory storage.
// Entries live until Destroy or GC removes them.
type MemoryHandler struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

var (
	_ TimestampHandler = (*MemoryHandler)(nil)
	_ NamedHandler     = (*MemoryHandler)(nil)
)

// NewMemoryHandler creates a new in-memory session handler
func NewMemoryHandler() *MemoryHandler {
	return &MemoryHandler{
		sessions: make(map[string]memoryEntry),
	}
}

// SaveHandlerName returns "memory".
func (m *MemoryHandler) SaveHandlerName() string {
	return MemorySaveHandlerName
}

// Open is a no-op for in-memory storage.
func (m *MemoryHandler) Open(context.Context, string, string) (bool, error) {
	return true, nil
}

// Close is a no-op for in-memory storage.
func (m *MemoryHandler) Close(context.Context) (bool, error) {
	return true, nil
}

// Read returns the stored data, or an empty string for unknown ids.
func (m *MemoryHandler) Read(_ context.Context, id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sessions[id].data, nil
}

// Write stores data and refreshes the update time.
func (m *MemoryHandler) Write(_ context.Context, id, data string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = memoryEntry{data: data, updatedAt: time.Now()}
	return true, nil
}

// Destroy removes the session from memory.
func (m *MemoryHandler) Destroy(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return true, nil
}

// GC removes all entries not updated within maxLifetime
func (m *MemoryHandler) GC(_ context.Context, maxLifetime time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxLifetime)
	removed := 0
	for id, entry := range m.sessions {
		if entry.updatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// ValidateID reports whether a session is stored under id.
func (m *MemoryHandler) ValidateID(_ context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.sessions[id]
	return exists, nil
}

// UpdateTimestamp only bumps the update time of an existing entry; unknown ids are written.
func (m *MemoryHandler) UpdateTimestamp(_ context.Context, id, data string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.sessions[id]
	if !exists {
		entry.data = data
	}
	entry.updatedAt = time.Now()
	m.sessions[id] = entry
	return true, nil
}

// Len returns the number of stored sessions
func (m *MemoryHandler) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
