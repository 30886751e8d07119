package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"chirp/config"
	"chirp/internal/domain/entity"
	"chirp/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const postsKeyPrefix = "posts:"

// redisPostCache implements service.PostCache on Redis. Entries are
// JSON-encoded listings keyed per owner and bounded by a TTL, so a
// stale entry ages out even if an invalidation is ever missed.
type redisPostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// noopPostCache is used when caching is disabled or Redis is not
// configured. Every read is a miss and writes do nothing.
type noopPostCache struct{}

// NewPostCache is the constructor for the post-listing cache.
func NewPostCache(client *redis.Client, cfg *config.Config) service.PostCache {
	if client == nil || cfg.Cache == nil || !cfg.Cache.Enabled {
		return &noopPostCache{}
	}

	return &redisPostCache{
		client: client,
		ttl:    cfg.Cache.PostsTTL,
	}
}

func postsKey(ownerID int64) string {
	return postsKeyPrefix + strconv.FormatInt(ownerID, 10)
}

// Get returns the cached listing for the owner, or (nil, nil) on a miss.
func (c *redisPostCache) Get(ctx context.Context, ownerID int64) ([]*entity.Post, error) {
	data, err := c.client.Get(ctx, postsKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "post cache get failed")
	}

	var posts []*entity.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, nil
	}

	return posts, nil
}

// Set stores the listing for the owner with the configured TTL.
func (c *redisPostCache) Set(ctx context.Context, ownerID int64, posts []*entity.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return errors.Wrap(err, "post cache marshal failed")
	}

	if err := c.client.Set(ctx, postsKey(ownerID), data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "post cache set failed")
	}

	return nil
}

// Invalidate drops the owner's cached listing.
func (c *redisPostCache) Invalidate(ctx context.Context, ownerID int64) error {
	if err := c.client.Del(ctx, postsKey(ownerID)).Err(); err != nil {
		return errors.Wrap(err, "post cache invalidate failed")
	}

	return nil
}

func (c *noopPostCache) Get(context.Context, int64) ([]*entity.Post, error) {
	return nil, nil
}

func (c *noopPostCache) Set(context.Context, int64, []*entity.Post) error {
	return nil
}

func (c *noopPostCache) Invalidate(context.Context, int64) error {
	return nil
}
