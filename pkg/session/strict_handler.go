package session

import (
	"context"
	"time"
)

// StrictHandler wraps a handler and refuses to adopt session ids that do not
// exist yet. ValidateID prefetches the data so the following Read does not hit
// the wrapped handler twice, and writing empty data removes the session.
type StrictHandler struct {
	handler     Handler
	sessionName string

	prefetchID   string
	prefetchData string
	hasPrefetch  bool

	// newSessionID is the id whose Read came back empty during this request.
	newSessionID string
}

var (
	_ TimestampHandler = (*StrictHandler)(nil)
	_ NamedHandler     = (*StrictHandler)(nil)
)

// NewStrictHandler wraps h in strict id validation.
func NewStrictHandler(h Handler) *StrictHandler {
	return &StrictHandler{handler: h}
}

// SaveHandlerName passes the wrapped handler's name through.
func (s *StrictHandler) SaveHandlerName() string {
	return saveHandlerName(s.handler)
}

// SessionName returns the name recorded by the last Open call.
func (s *StrictHandler) SessionName() string {
	return s.sessionName
}

// Open records the session name and opens the wrapped handler.
func (s *StrictHandler) Open(ctx context.Context, savePath, name string) (bool, error) {
	s.sessionName = name
	return s.handler.Open(ctx, savePath, name)
}

// Close closes the wrapped handler.
func (s *StrictHandler) Close(ctx context.Context) (bool, error) {
	return s.handler.Close(ctx)
}

// ValidateID reads the session and accepts the id only if it holds data.
func (s *StrictHandler) ValidateID(ctx context.Context, id string) (bool, error) {
	data, err := s.Read(ctx, id)
	if err != nil {
		return false, err
	}
	s.prefetchID = id
	s.prefetchData = data
	s.hasPrefetch = true
	return data != "", nil
}

// Read serves the data prefetched by ValidateID once, otherwise reads through.
func (s *StrictHandler) Read(ctx context.Context, id string) (string, error) {
	if s.hasPrefetch {
		prefetchID, prefetchData := s.prefetchID, s.prefetchData
		s.prefetchID, s.prefetchData, s.hasPrefetch = "", "", false

		if prefetchID == id || prefetchData == "" {
			s.markNew(id, prefetchData)
			return prefetchData, nil
		}
	}

	data, err := s.handler.Read(ctx, id)
	if err != nil {
		return "", err
	}
	s.markNew(id, data)
	return data, nil
}

// Write destroys the session when there is nothing to persist.
func (s *StrictHandler) Write(ctx context.Context, id, data string) (bool, error) {
	if data == "" {
		return s.Destroy(ctx, id)
	}
	s.newSessionID = ""
	return s.handler.Write(ctx, id, data)
}

// UpdateTimestamp is a plain Write: strict mode always persists the payload.
func (s *StrictHandler) UpdateTimestamp(ctx context.Context, id, data string) (bool, error) {
	return s.Write(ctx, id, data)
}

// Destroy skips the wrapped handler for a session that was never persisted.
func (s *StrictHandler) Destroy(ctx context.Context, id string) (bool, error) {
	if s.IsNew(id) {
		return true, nil
	}
	return s.handler.Destroy(ctx, id)
}

// GC forwards to the wrapped handler.
func (s *StrictHandler) GC(ctx context.Context, maxLifetime time.Duration) (int, error) {
	return s.handler.GC(ctx, maxLifetime)
}

// IsNew reports whether id was read as empty during the current request.
func (s *StrictHandler) IsNew(id string) bool {
	return id != "" && s.newSessionID == id
}

func (s *StrictHandler) markNew(id, data string) {
	if data == "" {
		s.newSessionID = id
		return
	}
	s.newSessionID = ""
}
