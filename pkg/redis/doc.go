// Package redis connects to the Redis server that backs the shared preview
// store and exposes a readiness probe for it.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := preview.NewRedisStore(client, previewCfg)
//	health := httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)}
//
// Connect retries the initial ping; errors wrap ErrInvalidURL,
// ErrEmptyURL or ErrNotReady with errors.Join.
package redis
