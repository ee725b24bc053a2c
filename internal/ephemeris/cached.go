package ephemeris

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/jyotish/internal/observability"
	"github.com/Nixie-Tech-LLC/jyotish/internal/redis"
)

// Cached memoises another Provider. Snapshots are a pure function of the
// request so any TTL is safe; the TTL only bounds cache size.
type Cached struct {
	next    Provider
	cache   redis.Cache
	ttl     time.Duration
	metrics *observability.Collector
}

func NewCached(next Provider, cache redis.Cache, ttl time.Duration, metrics *observability.Collector) *Cached {
	return &Cached{next: next, cache: cache, ttl: ttl, metrics: metrics}
}

func (c *Cached) Positions(ctx context.Context, req Request) (*Snapshot, error) {
	key := redis.Key("ephemeris",
		strconv.FormatInt(req.Instant.UTC().Unix(), 10),
		strconv.FormatFloat(req.Latitude, 'f', 6, 64),
		strconv.FormatFloat(req.Longitude, 'f', 6, 64),
		Ayanamsa, HouseSystem, NodeModel,
	)

	var snap Snapshot
	found, err := c.cache.Get(ctx, key, &snap)
	switch {
	case err != nil:
		c.metrics.ObserveCache("ephemeris", "error")
		log.Warn().Err(err).Msg("[ephemeris] cache read failed")
	case found:
		if _, verr := snap.Validate(); verr == nil {
			c.metrics.ObserveCache("ephemeris", "hit")
			return &snap, nil
		}
		c.metrics.ObserveCache("ephemeris", "miss")
	default:
		c.metrics.ObserveCache("ephemeris", "miss")
	}

	fresh, err := c.next.Positions(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, fresh, c.ttl); err != nil {
		log.Warn().Err(err).Msg("[ephemeris] cache write failed")
	}
	return fresh, nil
}
