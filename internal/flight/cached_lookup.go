package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightfinder/pkg/cache"
	"flightfinder/pkg/logger"
)

// CachedAirportLookup keeps successful airport lookups for a short TTL.
// Cache failures fall through to the wrapped lookup.
type CachedAirportLookup struct {
	next   AirportLookup
	cache  cache.Cache
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedAirportLookup(next AirportLookup, c cache.Cache, ttlMinutes int, log logger.Logger) *CachedAirportLookup {
	return &CachedAirportLookup{
		next:   next,
		cache:  c,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		logger: log,
	}
}

func (c *CachedAirportLookup) LookupAirports(ctx context.Context, query, locale string) ([]AirportRef, error) {
	key := lookupCacheKey(query, locale)

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var refs []AirportRef
		if err := json.Unmarshal([]byte(cached), &refs); err == nil {
			c.logger.Debug("airport lookup cache hit", logger.Field{Key: "key", Value: key})
			return refs, nil
		}
		c.logger.Warn("discarding undecodable cache entry", logger.Field{Key: "key", Value: key})
	case errors.Is(err, cache.ErrMiss):
	default:
		c.logger.Warn("airport lookup cache unavailable", logger.Field{Key: "key", Value: key}, logger.Err(err))
	}

	refs, err := c.next.LookupAirports(ctx, query, locale)
	if err != nil {
		return nil, err
	}

	if len(refs) > 0 {
		payload, err := json.Marshal(refs)
		if err == nil {
			err = c.cache.Set(ctx, key, string(payload), c.ttl)
		}
		if err != nil {
			c.logger.Warn("failed to cache airport lookup", logger.Field{Key: "key", Value: key}, logger.Err(err))
		}
	}
	return refs, nil
}

func lookupCacheKey(query, locale string) string {
	return fmt.Sprintf("airport:%s:%s", locale, strings.ToLower(strings.TrimSpace(query)))
}
