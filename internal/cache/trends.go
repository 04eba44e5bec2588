package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/betanalytics/analytics-api/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTrendTTL = 5 * time.Minute

	trendVersionKey = "trends:version"
)

// RedisClient is the subset of *redis.Client the trend cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// TrendCache stores trend scans in Redis. Entries are namespaced by a
// version counter; bumping it orphans every entry at once and the TTL
// reclaims them. Get hands back the version it read so that a scan started
// before an Invalidate is written under the old, already orphaned version.
type TrendCache struct {
	client RedisClient
	ttl    time.Duration
}

func NewTrendCache(client RedisClient, ttl time.Duration) *TrendCache {
	if ttl <= 0 {
		ttl = DefaultTrendTTL
	}
	return &TrendCache{client: client, ttl: ttl}
}

func (c *TrendCache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, trendVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func trendKey(version int64, f models.TrendFilter) string {
	// Same normalisation as models.LeagueMatches: case only, spaces kept.
	league := strings.ToLower(f.League)
	if league == "" {
		league = "*"
	}
	kind := f.Type
	if kind == "" {
		kind = "all"
	}
	return fmt.Sprintf("trends:v%d:%s:%s", version, league, kind)
}

// Get returns the cached scan for f and the cache version it was looked up
// under. On a miss the version is still valid and should be passed to Set.
func (c *TrendCache) Get(ctx context.Context, f models.TrendFilter) ([]models.TrendResult, int64, bool, error) {
	v, err := c.version(ctx)
	if err != nil {
		return nil, 0, false, fmt.Errorf("read trend version: %w", err)
	}

	data, err := c.client.Get(ctx, trendKey(v, f)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, v, false, nil
	}
	if err != nil {
		return nil, v, false, err
	}

	var results []models.TrendResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, v, false, fmt.Errorf("decode cached trends: %w", err)
	}
	return results, v, true, nil
}

// Set stores results under version, normally the one Get returned before the
// scan ran.
func (c *TrendCache) Set(ctx context.Context, version int64, f models.TrendFilter, results []models.TrendResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshaling trends: %w", err)
	}
	return c.client.Set(ctx, trendKey(version, f), data, c.ttl).Err()
}

// Invalidate drops every cached scan by moving to a new version.
func (c *TrendCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, trendVersionKey).Err()
}
