// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct parsing:
//
//	if err := config.LoadEnv(); err != nil { // optional ./.env
//		return err
//	}
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Variables already present in the environment win over values from .env
// files. Parsing failures are reported as ErrParsingConfig joined with the
// underlying error, so callers can match them with errors.Is.
package config
