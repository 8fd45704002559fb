package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const verdictPrefix = "verdict:"

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// VerdictCache memoizes the model's raw JSON answer per input. A cache
// failure is treated as a miss, never as a request failure.
type VerdictCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewVerdictCache(rdb *redis.Client, ttl time.Duration) *VerdictCache {
	if rdb == nil {
		return nil
	}
	return &VerdictCache{rdb: rdb, ttl: ttl}
}

// CacheKey derives a stable key from the input kind and the sanitized
// input text.
func CacheKey(kind, input string) string {
	sum := sha256.Sum256([]byte(kind + "\x00" + input))
	return verdictPrefix + kind + ":" + hex.EncodeToString(sum[:])
}

func (c *VerdictCache) Get(ctx context.Context, kind, input string) (string, bool) {
	if c == nil {
		return "", false
	}
	raw, err := c.rdb.Get(ctx, CacheKey(kind, input)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("verdict cache get: %v", err)
		}
		return "", false
	}
	return raw, true
}

func (c *VerdictCache) Put(ctx context.Context, kind, input, raw string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, CacheKey(kind, input), raw, c.ttl).Err(); err != nil {
		log.Printf("verdict cache put: %v", err)
	}
}
