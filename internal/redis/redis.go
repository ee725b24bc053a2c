// Package redis caches upstream lookups (ephemeris snapshots, geocoder hits)
// so repeated charts for the same birth do not hit the collaborators again.
package redis

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"
)

// Cache stores JSON values by key.
type Cache interface {
	// Get decodes the value stored at key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Client is a Cache backed by a redis server.
type Client struct {
	rdb    *redis.Client
	prefix string
}

// NewClient connects lazily; call Ping to verify the server.
func NewClient(address, username, password string) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:     address,
			Username: username,
			Password: password,
			DB:       0,
		}),
		prefix: "jyotish:",
	}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// A stale or foreign value is treated as a miss.
		log.Warn().Err(err).Str("key", key).Msg("[cache] undecodable value")
		return false, nil
	}
	return true, nil
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Nop is a Cache that never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }

func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }

// Key builds a namespaced cache key from its parts, hashing them so keys
// stay short and free of user-supplied characters.
func Key(namespace string, parts ...string) string {
	sum := blake2b.Sum256([]byte(strings.Join(parts, "\x1f")))
	return namespace + ":" + hex.EncodeToString(sum[:16])
}
