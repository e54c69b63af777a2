package session

import (
	"context"
	"time"
)

// Handler defines the save handler contract used to persist session data
type Handler interface {
	// Open prepares the handler for a session with the given save path and name
	Open(ctx context.Context, savePath, name string) (bool, error)

	// Close releases resources acquired by Open
	Close(ctx context.Context) (bool, error)

	// Read returns the serialized session data, or an empty string for unknown ids
	Read(ctx context.Context, id string) (string, error)

	// Write persists the serialized session data
	Write(ctx context.Context, id, data string) (bool, error)

	// Destroy removes the session
	Destroy(ctx context.Context, id string) (bool, error)

	// GC removes sessions idle for longer than maxLifetime and returns how many were removed
	GC(ctx context.Context, maxLifetime time.Duration) (int, error)
}

// TimestampHandler is an optional extension for handlers that can validate
// session ids and refresh a session without rewriting its data
type TimestampHandler interface {
	Handler

	// ValidateID reports whether a session with the given id exists
	ValidateID(ctx context.Context, id string) (bool, error)

	// UpdateTimestamp marks the session as recently used
	UpdateTimestamp(ctx context.Context, id, data string) (bool, error)
}

// NamedHandler is implemented by handlers that report a save handler name
type NamedHandler interface {
	SaveHandlerName() string
}

// UserSaveHandlerName is reported for handlers that do not declare a name.
const UserSaveHandlerName = "user"

// saveHandlerName resolves the save handler name of h.
func saveHandlerName(h Handler) string {
	if named, ok := h.(NamedHandler); ok {
		return named.SaveHandlerName()
	}
	return UserSaveHandlerName
}
