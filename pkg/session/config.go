package session

import "time"

// DefaultMaxLifetime is the idle lifetime after which GC may remove a session.
const DefaultMaxLifetime = 24 * time.Minute

// Config holds session storage configuration
type Config struct {
	// SaveHandler selects the delegate built by cmd/session-gc: "files" or "redis"
	SaveHandler string `env:"SESSION_SAVE_HANDLER" envDefault:"files"`

	// SavePath is passed to Handler.Open; for the files handler it is the session directory
	SavePath string `env:"SESSION_SAVE_PATH"`

	// Name is the session name passed to Handler.Open (default: "sid")
	Name string `env:"SESSION_NAME" envDefault:"sid"`

	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"24m"`

	// StrictMode rejects session ids the handler does not know
	StrictMode bool `env:"SESSION_STRICT_MODE" envDefault:"true"`

	// LazyWrite refreshes the timestamp instead of rewriting unchanged data
	LazyWrite bool `env:"SESSION_LAZY_WRITE" envDefault:"true"`

	RedisPrefix string `env:"SESSION_REDIS_PREFIX" envDefault:"sess:"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		SaveHandler: FilesSaveHandlerName,
		Name:        "sid",
		MaxLifetime: DefaultMaxLifetime,
		StrictMode:  true,
		LazyWrite:   true,
		RedisPrefix: "sess:",
	}
}

// NewFromConfig creates a Storage around h using cfg.
func NewFromConfig(cfg Config, h Handler, opts ...Option) *Storage {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return NewStorage(h, configOpts...)
}
