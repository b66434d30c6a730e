package cache

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/d60-Lab/feedback-board/internal/model"
)

const feedKeyPrefix = "feed:"

// FeedCache caches composed feed pages in Redis, keyed by (type, sort, limit).
// Entries expire on their own TTL and are dropped eagerly when a new post lands.
type FeedCache struct {
    client *redis.Client
    ttl    time.Duration
}

func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return &FeedCache{client: client, ttl: ttl}
}

func feedKey(typeFilter, sortMode string, limit int) string {
    return fmt.Sprintf("%s%s:%s:%d", feedKeyPrefix, typeFilter, sortMode, limit)
}

func (c *FeedCache) Get(ctx context.Context, typeFilter, sortMode string, limit int) ([]*model.Post, bool) {
    data, err := c.client.Get(ctx, feedKey(typeFilter, sortMode, limit)).Bytes()
    if err != nil {
        return nil, false
    }
    var posts []*model.Post
    if err := json.Unmarshal(data, &posts); err != nil {
        return nil, false
    }
    return posts, true
}

func (c *FeedCache) Set(ctx context.Context, typeFilter, sortMode string, limit int, posts []*model.Post) error {
    payload, err := json.Marshal(posts)
    if err != nil {
        return err
    }
    return c.client.Set(ctx, feedKey(typeFilter, sortMode, limit), payload, c.ttl).Err()
}

// Invalidate drops every cached feed page.
func (c *FeedCache) Invalidate(ctx context.Context) error {
    iter := c.client.Scan(ctx, 0, feedKeyPrefix+"*", 100).Iterator()
    var keys []string
    for iter.Next(ctx) {
        keys = append(keys, iter.Val())
    }
    if err := iter.Err(); err != nil {
        return err
    }
    if len(keys) == 0 {
        return nil
    }
    return c.client.Del(ctx, keys...).Err()
}
