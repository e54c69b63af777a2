package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Storage
type Option func(*Storage)

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(s *Storage) {
		s.config = config
	}
}

// WithLogger sets the logger used for lifecycle events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSavePath sets the save path passed to the handler
func WithSavePath(path string) Option {
	return func(s *Storage) {
		s.config.SavePath = path
	}
}

// WithName sets the session name passed to the handler
func WithName(name string) Option {
	return func(s *Storage) {
		s.config.Name = name
	}
}

// WithMaxLifetime sets the idle lifetime used by GC
func WithMaxLifetime(d time.Duration) Option {
	return func(s *Storage) {
		s.config.MaxLifetime = d
	}
}

// WithStrictMode toggles rejection of unknown session ids
func WithStrictMode(strict bool) Option {
	return func(s *Storage) {
		s.config.StrictMode = strict
	}
}

// WithLazyWrite toggles timestamp-only saves for unchanged data
func WithLazyWrite(lazy bool) Option {
	return func(s *Storage) {
		s.config.LazyWrite = lazy
	}
}
