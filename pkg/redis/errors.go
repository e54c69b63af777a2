package redis

import "errors"

var (
	// ErrFailedToParseRedisConnString indicates Config.ConnectionURL is not a valid redis URL
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady indicates every connection attempt failed
	ErrRedisNotReady = errors.New("redis did not become ready within the given time period")

	// ErrEmptyConnectionURL indicates Config.ConnectionURL is empty
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")

	// ErrHealthcheckFailed indicates the health check could not ping the server
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
