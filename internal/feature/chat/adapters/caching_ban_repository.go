package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"manassa_backend/internal/feature/chat/domain/entity"
	"manassa_backend/internal/feature/chat/usecase"
)

// noBanMarker caches a negative lookup so unbanned users do not hit
// the store on every message.
const noBanMarker = "none"

// CachingBanRepository decorates a BanRepository with Redis caching of
// active-ban lookups, which run on every single message send. It adds
// caching transparently without modifying the underlying repository.
// With a nil client it degrades to a pure pass-through.
type CachingBanRepository struct {
	inner     usecase.BanRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.BanRepository = (*CachingBanRepository)(nil)

// NewCachingBanRepository decorates inner with Redis caching. If ttl
// is 0 it defaults to 30 seconds; an empty namespace defaults to
// "bans".
func NewCachingBanRepository(rdb *redis.Client, ttl time.Duration, inner usecase.BanRepository, namespace string) *CachingBanRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if namespace == "" {
		namespace = "bans"
	}
	return &CachingBanRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingBanRepository) cacheKey(userID string) string {
	return fmt.Sprintf("%s:user:%s", c.namespace, userID)
}

// FindActive serves lookups from cache when possible. Both hits and
// misses are cached; moderation writes invalidate.
func (c *CachingBanRepository) FindActive(ctx context.Context, userID string) (*entity.Ban, error) {
	if c.rdb == nil {
		return c.inner.FindActive(ctx, userID)
	}

	key := c.cacheKey(userID)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		if string(data) == noBanMarker {
			return nil, usecase.ErrBanNotFound
		}
		var b entity.Ban
		if err := json.Unmarshal(data, &b); err == nil {
			return &b, nil
		}
		// Corrupt entry: fall through to the store.
	}

	b, err := c.inner.FindActive(ctx, userID)
	if errors.Is(err, usecase.ErrBanNotFound) {
		c.rdb.Set(ctx, key, noBanMarker, c.ttl)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if data, merr := json.Marshal(b); merr == nil {
		c.rdb.Set(ctx, key, data, c.ttl)
	}
	return b, nil
}

// Create writes through and invalidates the user's cache entry.
func (c *CachingBanRepository) Create(ctx context.Context, b *entity.Ban) error {
	if err := c.inner.Create(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx, b.UserID)
	return nil
}

// Deactivate writes through and invalidates the user's cache entry.
func (c *CachingBanRepository) Deactivate(ctx context.Context, b *entity.Ban) error {
	if err := c.inner.Deactivate(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx, b.UserID)
	return nil
}

// ListActive always reads the store: the admin list must not lag.
func (c *CachingBanRepository) ListActive(ctx context.Context) ([]*entity.Ban, error) {
	return c.inner.ListActive(ctx)
}

func (c *CachingBanRepository) invalidate(ctx context.Context, userID string) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, c.cacheKey(userID))
}
