package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"compass-utils/internal/config"
	"compass-utils/internal/logging"
	"compass-utils/pkg/models"
)

// RedisProfileStore implements ProfileStore backed by Redis, so profiles
// survive server restarts and are shared across replicas.
type RedisProfileStore struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewRedisProfileStore creates a new Redis-backed profile store
func NewRedisProfileStore(cfg *config.Config) *RedisProfileStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB

	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &RedisProfileStore{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Save stores a profile for the owner, replacing any existing one
func (s *RedisProfileStore) Save(ctx context.Context, ownerID string, profile *models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := s.client.Set(ctx, s.profileKey(ownerID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}

	s.logger.Debug("Profile saved", map[string]interface{}{
		"owner_id": ownerID,
	})
	return nil
}

// Load retrieves the profile for the owner
func (s *RedisProfileStore) Load(ctx context.Context, ownerID string) (*models.Profile, error) {
	data, err := s.client.Get(ctx, s.profileKey(ownerID)).Result()
	if err == redis.Nil {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// Clear removes the profile for the owner
func (s *RedisProfileStore) Clear(ctx context.Context, ownerID string) error {
	if err := s.client.Del(ctx, s.profileKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}

// Ping tests the Redis connection
func (s *RedisProfileStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisProfileStore) Close() error {
	return s.client.Close()
}

func (s *RedisProfileStore) profileKey(ownerID string) string {
	return fmt.Sprintf("profile:user:%s", ownerID)
}
