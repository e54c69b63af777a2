// Package session provides pluggable save handlers for server-side sessions
// and the proxy and storage types that drive them through a request.
//
// A save handler persists opaque, already serialized session payloads keyed
// by session id. Any type that satisfies the Handler interface can be plugged
// in; handlers that also implement TimestampHandler can validate ids and
// refresh a session without rewriting it. Three handlers ship with the
// package: FileHandler ("files", on a go-billy filesystem), RedisHandler
// ("redis") and MemoryHandler ("memory"). StrictHandler wraps any of them and
// refuses to adopt unknown ids.
//
// # Architecture
//
// A Storage owns a Proxy, and the Proxy owns exactly one handler. The proxy
// forwards every call unchanged and adds a single piece of state, whether the
// session is active. Only the storage flips that state: it marks the proxy
// active after a successful Open and inactive again after Close.
//
//	┌─────────┐  Start / Save   ┌───────┐  forward   ┌──────────────────┐
//	│ Storage │ ──────────────► │ Proxy │ ─────────► │ Handler          │
//	└─────────┘   SetActive     └───────┘            │ (files, redis, …)│
//	                                                 └──────────────────┘
//
// The proxy detects once, at construction, whether its handler implements
// TimestampHandler. If it does not, ValidateID accepts every id and
// UpdateTimestamp falls back to Write.
//
// # Usage
//
//	import (
//	    "github.com/go-git/go-billy/v5/osfs"
//	    "github.com/dmitrymomot/sesskit/pkg/session"
//	)
//
//	handler := session.NewStrictHandler(session.NewFileHandler(osfs.New("/var/lib/sessions")))
//	storage := session.NewStorage(handler, session.WithMaxLifetime(time.Hour))
//
//	if err := storage.Start(ctx, idFromCookie); err != nil {
//	    return err
//	}
//	storage.SetData(payload)
//	if err := storage.Save(ctx); err != nil {
//	    return err
//	}
//
// Redis handler:
//
//	storage := session.NewStorage(session.NewRedisHandler(client, session.WithRedisTTL(time.Hour)))
//
// # Configuration
//
// Storage knobs are exposed via Option functions (e.g. WithStrictMode) or by
// passing a Config struct to NewFromConfig. Twelve-factor applications can
// populate the same fields from environment variables through pkg/config.
//
// # Error Handling
//
// Errors returned by a handler are passed through the proxy untouched. The
// storage adds its own sentinel values:
//
//   - ErrAlreadyStarted   – Start called twice without Save or Destroy
//   - ErrNotStarted       – Save or Destroy without a running session
//   - ErrOpenFailed       – the handler returned false from Open
//   - ErrInvalidSessionID – the files handler cannot store the id
package session
