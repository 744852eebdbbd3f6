package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"friendship-service/internal/models"
)

// viewTTL keeps cached entries short-lived; writers also invalidate them
// explicitly, so the TTL only bounds staleness across service instances.
const viewTTL = 30 * time.Second

// RelationshipCache is a read-through cache for status views and friend
// lists. Misses and cache failures both report a miss; callers fall back to
// the store.
type RelationshipCache interface {
	GetView(ctx context.Context, viewerID, otherID int64) (models.View, bool)
	SetView(ctx context.Context, viewerID, otherID int64, view models.View)
	GetFriends(ctx context.Context, userID int64) ([]int64, bool)
	SetFriends(ctx context.Context, userID int64, ids []int64)
	InvalidatePair(ctx context.Context, a, b int64)
	Close() error
}

type redisCache struct {
	client *goredis.Client
}

// NewRedis connects to Redis and returns a relationship cache backed by it.
func NewRedis(addr, password string, db int) (RelationshipCache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &redisCache{client: client}, nil
}

func viewKey(viewerID, otherID int64) string {
	return fmt.Sprintf("rel:view:%d:%d", viewerID, otherID)
}

func friendsKey(userID int64) string {
	return fmt.Sprintf("rel:friends:%d", userID)
}

func (c *redisCache) GetView(ctx context.Context, viewerID, otherID int64) (models.View, bool) {
	v, err := c.client.Get(ctx, viewKey(viewerID, otherID)).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			log.Printf("warning: cache read failed: %v", err)
		}
		return "", false
	}
	return models.View(v), true
}

func (c *redisCache) SetView(ctx context.Context, viewerID, otherID int64, view models.View) {
	if err := c.client.Set(ctx, viewKey(viewerID, otherID), string(view), viewTTL).Err(); err != nil {
		log.Printf("warning: cache write failed: %v", err)
	}
}

func (c *redisCache) GetFriends(ctx context.Context, userID int64) ([]int64, bool) {
	raw, err := c.client.Get(ctx, friendsKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			log.Printf("warning: cache read failed: %v", err)
		}
		return nil, false
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false
	}
	return ids, true
}

func (c *redisCache) SetFriends(ctx context.Context, userID int64, ids []int64) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, friendsKey(userID), raw, viewTTL).Err(); err != nil {
		log.Printf("warning: cache write failed: %v", err)
	}
}

func (c *redisCache) InvalidatePair(ctx context.Context, a, b int64) {
	keys := []string{
		viewKey(a, b),
		viewKey(b, a),
		friendsKey(a),
		friendsKey(b),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("warning: cache invalidation failed: %v", err)
	}
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// NewNoop returns a cache that always misses, for when Redis is not configured.
func NewNoop() RelationshipCache { return &noopCache{} }

type noopCache struct{}

func (n *noopCache) GetView(ctx context.Context, viewerID, otherID int64) (models.View, bool) {
	return "", false
}
func (n *noopCache) SetView(ctx context.Context, viewerID, otherID int64, view models.View) {}
func (n *noopCache) GetFriends(ctx context.Context, userID int64) ([]int64, bool)           { return nil, false }
func (n *noopCache) SetFriends(ctx context.Context, userID int64, ids []int64)              {}
func (n *noopCache) InvalidatePair(ctx context.Context, a, b int64)                         {}
func (n *noopCache) Close() error                                                           { return nil }
