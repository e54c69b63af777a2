// Command session-gc removes expired sessions from the configured save handler.
//
// Configuration comes from SESSION_* environment variables (optionally loaded
// from .env files). Without --interval it runs a single pass and exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/sesskit/pkg/config"
	"github.com/dmitrymomot/sesskit/pkg/logger"
	"github.com/dmitrymomot/sesskit/pkg/redis"
	"github.com/dmitrymomot/sesskit/pkg/session"
)

var errUnknownSaveHandler = errors.New("unknown save handler")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "session-gc: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("session-gc", pflag.ContinueOnError)
	envFiles := flags.StringSlice("env-file", nil, "load variables from these .env files (default: ./.env if present)")
	interval := flags.Duration("interval", 0, "repeat garbage collection at this interval until interrupted")
	environment := flags.String("environment", logger.EnvProduction, "logging preset: development, staging or production")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log := logger.New(
		logger.WithOutput(out),
		logger.WithEnvironment(*environment, "session-gc"),
	)

	if err := config.LoadEnv(*envFiles...); err != nil {
		return err
	}

	var cfg session.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.close()

	storage := session.NewFromConfig(cfg, backend.handler,
		session.WithSavePath(""),
		session.WithLogger(log),
	)

	if *interval <= 0 {
		return collect(ctx, storage, backend.ping, log)
	}
	return collectEvery(ctx, *interval, storage, backend.ping, log)
}

// collectEvery runs a pass per tick until ctx is done. A backend that fails
// its health check is logged and retried on the next tick.
func collectEvery(ctx context.Context, interval time.Duration, storage *session.Storage, ping func(context.Context) error, log *slog.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := collect(ctx, storage, ping, log)
		switch {
		case errors.Is(err, redis.ErrHealthcheckFailed):
			log.WarnContext(ctx, "session backend unavailable",
				logger.Component("session-gc"),
				logger.Error(err),
			)
		case err != nil:
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func collect(ctx context.Context, storage *session.Storage, ping func(context.Context) error, log *slog.Logger) error {
	if ping != nil {
		if err := ping(ctx); err != nil {
			return err
		}
	}

	start := time.Now()
	removed, err := storage.GC(ctx)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "gc pass completed",
		logger.Count(removed),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// sessionBackend is the save handler selected by configuration together with its
// optional health check and cleanup.
type sessionBackend struct {
	handler session.Handler
	ping    func(context.Context) error
	close   func()
}

// newBackend builds the delegate selected by cfg.SaveHandler. The files
// handler is rooted at the save path so GC sweeps that directory only.
func newBackend(ctx context.Context, cfg session.Config) (sessionBackend, error) {
	switch cfg.SaveHandler {
	case session.FilesSaveHandlerName:
		dir := cfg.SavePath
		if dir == "" {
			dir = os.TempDir()
		}
		return sessionBackend{
			handler: session.NewFileHandler(osfs.New(dir)),
			close:   func() {},
		}, nil

	case session.RedisSaveHandlerName:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return sessionBackend{}, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return sessionBackend{}, err
		}
		return sessionBackend{
			handler: session.NewRedisHandler(client,
				session.WithRedisPrefix(cfg.RedisPrefix),
				session.WithRedisTTL(cfg.MaxLifetime),
			),
			ping:  redis.Healthcheck(client),
			close: func() { _ = client.Close() },
		}, nil

	default:
		return sessionBackend{}, fmt.Errorf("%w: %q", errUnknownSaveHandler, cfg.SaveHandler)
	}
}
