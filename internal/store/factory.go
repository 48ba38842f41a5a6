package store

import (
	"context"

	"compass-utils/internal/config"
	"compass-utils/internal/logging"
)

// NewProfileStore picks the profile backend. Redis is preferred when it is
// reachable; otherwise the store degrades to in-memory so the server still
// starts in local development without a Redis instance.
func NewProfileStore(cfg *config.Config) ProfileStore {
	logger := logging.GetGlobalLogger()

	redisStore := NewRedisProfileStore(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()

	if err := redisStore.Ping(ctx); err != nil {
		logger.Warn("Redis not reachable - using in-memory profile store", map[string]interface{}{
			"redis_url": cfg.Redis.URL,
			"error":     err.Error(),
		})
		_ = redisStore.Close()
		return NewInMemoryProfileStore()
	}

	logger.Info("Using Redis profile store", map[string]interface{}{
		"redis_url": cfg.Redis.URL,
	})
	return redisStore
}
