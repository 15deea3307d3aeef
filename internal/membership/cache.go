package membership

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"community-events/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// SuccessTTL caches a good group listing for an hour.
	SuccessTTL = time.Hour
	// FailureTTL caches a failed or empty lookup briefly so transient
	// outages self-heal without hammering the membership service.
	FailureTTL = 10 * time.Second
)

// Directory answers group-membership questions, caching results between
// requests. Lookup failures degrade to an empty group: privilege checks
// fail closed.
type Directory interface {
	Group(ctx context.Context, name string) []string
	ForceRefresh(ctx context.Context, name string) []string
}

// FetchResult pairs a group listing with how long it may be cached. The TTL
// is decided at fetch time so the cache itself stays policy-free.
type FetchResult struct {
	Handles []string
	TTL     time.Duration
}

// Store is the slice of the cache backend the directory needs.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.WithComponent("membership").Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

func (s *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.WithComponent("membership").Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

type CachedDirectory struct {
	store   Store
	fetcher Fetcher
}

func NewCachedDirectory(store Store, fetcher Fetcher) *CachedDirectory {
	return &CachedDirectory{store: store, fetcher: fetcher}
}

func groupKey(name string) string {
	return fmt.Sprintf("groups:%s", name)
}

// fetch resolves the group against the external service and decides the
// cache TTL: an hour for a good listing, ten seconds for a failure or an
// empty result.
func (d *CachedDirectory) fetch(ctx context.Context, name string) FetchResult {
	handles, err := d.fetcher.FetchGroup(ctx, name)
	if err != nil || len(handles) == 0 {
		if err != nil {
			logger.WithComponent("membership").Warn("group lookup failed",
				zap.String("group", name), zap.Error(err))
		}
		return FetchResult{Handles: []string{}, TTL: FailureTTL}
	}
	return FetchResult{Handles: handles, TTL: SuccessTTL}
}

func (d *CachedDirectory) Group(ctx context.Context, name string) []string {
	key := groupKey(name)
	if raw, ok := d.store.Get(ctx, key); ok {
		var handles []string
		if err := json.Unmarshal([]byte(raw), &handles); err == nil {
			return handles
		}
	}
	return d.refresh(ctx, name)
}

// ForceRefresh bypasses the cache and replaces the stored listing.
func (d *CachedDirectory) ForceRefresh(ctx context.Context, name string) []string {
	return d.refresh(ctx, name)
}

func (d *CachedDirectory) refresh(ctx context.Context, name string) []string {
	result := d.fetch(ctx, name)
	if raw, err := json.Marshal(result.Handles); err == nil {
		d.store.Set(ctx, groupKey(name), string(raw), result.TTL)
	}
	return result.Handles
}
