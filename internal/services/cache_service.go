package services

import (
	"context"
	"errors"
	"time"

	"campusmarket/pkg/cache"
	"campusmarket/pkg/logger"
)

type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) (int64, error)
	Ping(ctx context.Context) error
}

// CacheStore is the backend a CacheService wraps; *cache.RedisCache satisfies it.
type CacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) (int64, error)
	Ping(ctx context.Context) error
}

type cacheService struct {
	store      CacheStore
	logger     *logger.Logger
	defaultTTL time.Duration
}

func NewCacheService(store CacheStore, log *logger.Logger, defaultTTL time.Duration) CacheService {
	if log == nil {
		log = logger.NewNop()
	}
	return &cacheService{
		store:      store,
		logger:     log,
		defaultTTL: defaultTTL,
	}
}

// Get returns cache.ErrCacheMiss when the key is absent. Backend errors are
// logged and returned so callers fall through to the store.
func (c *cacheService) Get(ctx context.Context, key string, dest interface{}) error {
	err := c.store.Get(ctx, key, dest)
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.WithError(err).WithField("key", key).Debug("cache read failed")
	}
	return err
}

func (c *cacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = c.defaultTTL
	}
	if err := c.store.Set(ctx, key, value, expiration); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("cache write failed")
		return err
	}
	return nil
}

func (c *cacheService) Delete(ctx context.Context, keys ...string) error {
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.WithError(err).WithField("keys", keys).Warn("cache delete failed")
		return err
	}
	return nil
}

func (c *cacheService) DeletePattern(ctx context.Context, pattern string) (int64, error) {
	n, err := c.store.DeletePattern(ctx, pattern)
	if err != nil {
		c.logger.WithError(err).WithField("pattern", pattern).Warn("cache pattern delete failed")
	}
	return n, err
}

func (c *cacheService) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
