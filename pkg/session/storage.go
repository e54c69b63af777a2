package session

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/uuid"

	"github.com/dmitrymomot/sesskit/pkg/logger"
)

// IDGenerator produces identifiers for new sessions.
type IDGenerator func() string

// Storage drives a save handler through one session lifecycle per Start/Save
// pair. It owns the Proxy around the handler and is the only component that
// flips the proxy between inactive and active.
type Storage struct {
	proxy       *Proxy
	config      Config
	logger      *slog.Logger
	generateID  IDGenerator
	id          string
	data        string
	initialData string
	started     bool
	isNew       bool
}

// NewStorage creates a storage around h. A *Proxy is used as-is; any other
// handler is wrapped in a new Proxy. A nil handler selects strict file
// sessions in the OS temp directory.
func NewStorage(h Handler, opts ...Option) *Storage {
	if h == nil {
		h = NewStrictHandler(NewFileHandler(osfs.New(os.TempDir())))
	}

	proxy, ok := h.(*Proxy)
	if !ok {
		proxy = NewProxy(h)
	}

	s := &Storage{
		proxy:      proxy,
		config:     DefaultConfig(),
		logger:     slog.New(slog.DiscardHandler),
		generateID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithIDGenerator sets the generator used for new sessions (default: UUID v4)
func WithIDGenerator(fn IDGenerator) Option {
	return func(s *Storage) {
		if fn != nil {
			s.generateID = fn
		}
	}
}

// SaveHandler returns the proxy wrapping the configured handler.
func (s *Storage) SaveHandler() *Proxy {
	return s.proxy
}

// Config returns the storage configuration.
func (s *Storage) Config() Config {
	return s.config
}

// Start opens the handler and loads the session identified by id. An empty id,
// an id the handler refuses as malformed, or in strict mode an id the handler
// does not know, starts a new session under a freshly generated id instead.
func (s *Storage) Start(ctx context.Context, id string) error {
	if s.started {
		return ErrAlreadyStarted
	}

	ok, err := s.proxy.Open(ctx, s.config.SavePath, s.config.Name)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOpenFailed
	}
	s.proxy.SetActive(true)

	isNew := id == ""
	if !isNew && s.config.StrictMode {
		valid, err := s.proxy.ValidateID(ctx, id)
		if err != nil && !errors.Is(err, ErrInvalidSessionID) {
			s.abort(ctx)
			return err
		}
		isNew = !valid
	}
	if isNew {
		id = s.renewID(ctx, id)
	}

	data, err := s.proxy.Read(ctx, id)
	if errors.Is(err, ErrInvalidSessionID) && !isNew {
		isNew = true
		id = s.renewID(ctx, id)
		data, err = s.proxy.Read(ctx, id)
	}
	if err != nil {
		s.abort(ctx)
		return err
	}

	s.id = id
	s.data = data
	s.initialData = data
	s.isNew = isNew
	s.started = true

	s.logger.DebugContext(ctx, "session started",
		logger.Component("session"),
		logger.SessionID(id),
		logger.SaveHandler(s.proxy.SaveHandlerName()),
	)
	return nil
}

// IsStarted reports whether Start succeeded and the session was not saved or destroyed yet.
func (s *Storage) IsStarted() bool {
	return s.started
}

// IsNew reports whether the running session got a freshly generated id.
func (s *Storage) IsNew() bool {
	return s.isNew
}

// ID returns the id of the running session.
func (s *Storage) ID() string {
	return s.id
}

// Data returns the serialized session data.
func (s *Storage) Data() string {
	return s.data
}

// SetData replaces the serialized session data persisted on Save.
func (s *Storage) SetData(data string) {
	s.data = data
}

// Save persists the session and closes the handler. With lazy writes enabled,
// unchanged data only refreshes the session timestamp.
func (s *Storage) Save(ctx context.Context) error {
	if !s.started {
		return ErrNotStarted
	}

	var (
		ok  bool
		err error
	)
	if s.config.LazyWrite && s.data == s.initialData {
		ok, err = s.proxy.UpdateTimestamp(ctx, s.id, s.data)
	} else {
		ok, err = s.proxy.Write(ctx, s.id, s.data)
	}

	var errs []error
	switch {
	case err != nil:
		errs = append(errs, err)
	case !ok:
		errs = append(errs, ErrWriteFailed)
	}

	if err := s.close(ctx); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.WarnContext(ctx, "session save failed",
			logger.Component("session"),
			logger.SessionID(s.id),
			logger.SaveHandler(s.proxy.SaveHandlerName()),
			logger.Error(err),
		)
		s.reset()
		return err
	}

	s.logger.DebugContext(ctx, "session saved",
		logger.Component("session"),
		logger.SessionID(s.id),
	)
	s.reset()
	return nil
}

// Destroy removes the running session and closes the handler.
func (s *Storage) Destroy(ctx context.Context) error {
	if !s.started {
		return ErrNotStarted
	}

	var errs []error
	ok, err := s.proxy.Destroy(ctx, s.id)
	switch {
	case err != nil:
		errs = append(errs, err)
	case !ok:
		errs = append(errs, ErrDestroyFailed)
	}

	if err := s.close(ctx); err != nil {
		errs = append(errs, err)
	}

	s.reset()
	return errors.Join(errs...)
}

// GC asks the handler to remove sessions idle longer than the configured max lifetime.
func (s *Storage) GC(ctx context.Context) (int, error) {
	removed, err := s.proxy.GC(ctx, s.config.MaxLifetime)
	if err != nil {
		s.logger.WarnContext(ctx, "session gc failed",
			logger.Component("session"),
			logger.SaveHandler(s.proxy.SaveHandlerName()),
			logger.Error(err),
		)
		return removed, err
	}

	s.logger.InfoContext(ctx, "session gc finished",
		logger.Component("session"),
		logger.SaveHandler(s.proxy.SaveHandlerName()),
		logger.Count(removed),
	)
	return removed, nil
}

// renewID returns a fresh id to replace rejected.
func (s *Storage) renewID(ctx context.Context, rejected string) string {
	if rejected != "" {
		s.logger.DebugContext(ctx, "session id rejected",
			logger.Component("session"),
			logger.SessionID(rejected),
			logger.SaveHandler(s.proxy.SaveHandlerName()),
		)
	}
	return s.generateID()
}

func (s *Storage) close(ctx context.Context) error {
	defer s.proxy.SetActive(false)

	ok, err := s.proxy.Close(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCloseFailed
	}
	return nil
}

// abort closes the handler after a failed Start; the close result is irrelevant then.
func (s *Storage) abort(ctx context.Context) {
	_ = s.close(ctx)
}

func (s *Storage) reset() {
	s.id = ""
	s.data = ""
	s.initialData = ""
	s.started = false
	s.isNew = false
}
