package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/jyotish/internal/config"
	"github.com/Nixie-Tech-LLC/jyotish/internal/redis"
)

// InitCache selects the upstream cache. Without REDIS_ADDRESS, or when the
// server cannot be reached, lookups are not cached.
func InitCache(cfg *config.Config) (cache redis.Cache, enabled bool, closeFn func()) {
	if !cfg.CacheEnabled() {
		log.Info().Msg("[cache] REDIS_ADDRESS not set, caching disabled")
		return redis.Nop{}, false, func() {}
	}

	client := redis.NewClient(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("[cache] redis unreachable, caching disabled")
		_ = client.Close()
		return redis.Nop{}, false, func() {}
	}

	log.Info().Str("address", cfg.RedisAddress).Dur("ttl", cfg.CacheTTL).Msg("[cache] using redis")
	return client, true, func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("[cache] close failed")
		}
	}
}
