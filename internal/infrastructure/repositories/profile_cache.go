package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/beautyauthsvc/domain"
)

// ProfileCacheImpl implements domain.ProfileCache using Redis. It is a
// read-through cache in front of the profile table; writes go to Postgres
// and invalidate here.
type ProfileCacheImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewProfileCache creates a new profile cache
func NewProfileCache(client *redis.Client, ttl time.Duration) domain.ProfileCache {
	return &ProfileCacheImpl{
		client: client,
		prefix: "beauty_profile:",
		ttl:    ttl,
	}
}

func (c *ProfileCacheImpl) key(userID uint) string {
	return fmt.Sprintf("%s%d", c.prefix, userID)
}

// Get implements domain.ProfileCache. A miss returns (nil, nil); only
// transport failures surface as errors.
func (c *ProfileCacheImpl) Get(ctx context.Context, userID uint) (*domain.BeautyProfile, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var profile domain.BeautyProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		_ = c.client.Del(ctx, c.key(userID)).Err()
		return nil, nil
	}

	return &profile, nil
}

// Set implements domain.ProfileCache
func (c *ProfileCacheImpl) Set(ctx context.Context, profile *domain.BeautyProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	return c.client.Set(ctx, c.key(profile.UserID), data, c.ttl).Err()
}

// Invalidate implements domain.ProfileCache
func (c *ProfileCacheImpl) Invalidate(ctx context.Context, userID uint) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
