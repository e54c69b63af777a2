package session

import "errors"

var (
	// ErrInvalidSessionID indicates the id contains characters a handler cannot store
	ErrInvalidSessionID = errors.New("session.invalid_id")

	// ErrAlreadyStarted indicates Start was called on a running session
	ErrAlreadyStarted = errors.New("session.already_started")

	// ErrNotStarted indicates the session has not been started
	ErrNotStarted = errors.New("session.not_started")

	// ErrOpenFailed indicates the save handler refused to open
	ErrOpenFailed = errors.New("session.open_failed")

	// ErrCloseFailed indicates the save handler refused to close
	ErrCloseFailed = errors.New("session.close_failed")

	// ErrWriteFailed indicates the save handler refused to persist data
	ErrWriteFailed = errors.New("session.write_failed")

	// ErrDestroyFailed indicates the save handler refused to destroy the session
	ErrDestroyFailed = errors.New("session.destroy_failed")
)
