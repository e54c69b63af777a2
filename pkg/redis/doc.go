// Package redis connects to the Redis server used by session.RedisHandler.
//
// It wraps the go-redis client and adds:
//
//   - Connect, which retries the initial ping according to Config.
//   - Healthcheck, a ping check suitable for liveness or readiness checks.
//
// Config fields are populated from SESSION_REDIS_* environment variables via
// pkg/config.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	handler := session.NewRedisHandler(client)
//
// # Errors
//
// Sentinel errors (ErrRedisNotReady and friends) are joined with the
// underlying go-redis error using errors.Join, so both can be matched with
// errors.Is.
package redis
