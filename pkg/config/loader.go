package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. With no
// arguments it loads ./.env and ignores a missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		// The default .env file is optional
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into the struct pointed to by v using
// `env` and `envDefault` field tags.
//
// Example:
//
//	type SessionConfig struct {
//		SavePath    string        `env:"SESSION_SAVE_PATH"`
//		MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"24m"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
