// Package cache wraps redis for the two optional fast paths: memoized
// classification results and the background triage job list.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"supportdesk/internal/category"
)

const triageJobsKey = "triage_jobs"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(url string, ttl time.Duration) (*Cache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{client: redis.NewClient(opt), ttl: ttl}, nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// categoryKey derives the cache key from the inquiry text. Classification
// is deterministic per inquiry, so the hash of the text is the identity.
func categoryKey(inquiry string) string {
	sum := sha256.Sum256([]byte(inquiry))
	return "classify:" + hex.EncodeToString(sum[:])
}

// GetCategory returns the cached category for an inquiry.
func (c *Cache) GetCategory(ctx context.Context, inquiry string) (category.Category, bool, error) {
	val, err := c.client.Get(ctx, categoryKey(inquiry)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	cat, ok := canonicalHit(val)
	return cat, ok, nil
}

// canonicalHit maps a stored value to a cache result. Values that are no
// longer members of the canonical set are misses, so a category edit
// invalidates stale entries without a flush.
func canonicalHit(val string) (category.Category, bool) {
	cat := category.Category(val)
	if !category.Valid(cat) {
		return "", false
	}
	return cat, true
}

func (c *Cache) SetCategory(ctx context.Context, inquiry string, cat category.Category) error {
	return c.client.Set(ctx, categoryKey(inquiry), string(cat), c.ttl).Err()
}

// PushTriageJob enqueues an inquiry for the background worker.
func (c *Cache) PushTriageJob(ctx context.Context, inquiry string) error {
	return c.client.LPush(ctx, triageJobsKey, inquiry).Err()
}

// PopTriageJob blocks up to timeout for the next queued inquiry. A drained
// queue returns redis.Nil.
func (c *Cache) PopTriageJob(ctx context.Context, timeout time.Duration) (string, error) {
	res, err := c.client.BRPop(ctx, timeout, triageJobsKey).Result()
	if err != nil {
		return "", err
	}
	if len(res) < 2 {
		return "", redis.Nil
	}
	return res[1], nil
}

func (c *Cache) Depth(ctx context.Context) (int64, error) {
	return c.client.LLen(ctx, triageJobsKey).Result()
}
