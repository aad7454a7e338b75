package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-website-builder/internal/domain"
	"ai-website-builder/internal/logger"
	"ai-website-builder/internal/metrics"
)

const (
	websiteKeyPrefix = "website:"
	websiteListKey   = "websites:all"
)

// CachedWebsiteRepository is a read-through Redis cache in front of another
// WebsiteRepository. Save writes through and invalidates the affected keys.
// Redis failures are logged and the inner repository is used instead.
type CachedWebsiteRepository struct {
	inner  WebsiteRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedWebsiteRepository wraps inner with a Redis cache.
func NewCachedWebsiteRepository(inner WebsiteRepository, client *redis.Client, ttl time.Duration) *CachedWebsiteRepository {
	return &CachedWebsiteRepository{inner: inner, client: client, ttl: ttl}
}

// FindByID returns the cached website or loads and caches it. Absent websites are not cached.
func (r *CachedWebsiteRepository) FindByID(ctx context.Context, id string) (*domain.Website, error) {
	key := websiteKeyPrefix + id

	var cached domain.Website
	if r.get(ctx, key, &cached) {
		return &cached, nil
	}

	website, err := r.inner.FindByID(ctx, id)
	if err != nil || website == nil {
		return website, err
	}

	r.set(ctx, key, website)
	return website, nil
}

// FindAll returns the cached website list or loads and caches it.
func (r *CachedWebsiteRepository) FindAll(ctx context.Context) ([]domain.Website, error) {
	var cached []domain.Website
	if r.get(ctx, websiteListKey, &cached) {
		return cached, nil
	}

	websites, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	r.set(ctx, websiteListKey, websites)
	return websites, nil
}

// Save persists through the inner repository, then drops the stale cache entries.
func (r *CachedWebsiteRepository) Save(ctx context.Context, website *domain.Website) error {
	if err := r.inner.Save(ctx, website); err != nil {
		return err
	}

	if err := r.client.Del(ctx, websiteKeyPrefix+website.ID, websiteListKey).Err(); err != nil {
		logger.WithWebsiteID(website.ID).WarnContext(ctx, "Failed to invalidate website cache",
			slog.String("error", err.Error()))
	}
	return nil
}

func (r *CachedWebsiteRepository) get(ctx context.Context, key string, dest any) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnContext(ctx, "Cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		metrics.ObserveCacheLookup(false)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.WarnContext(ctx, "Discarding undecodable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		metrics.ObserveCacheLookup(false)
		return false
	}

	metrics.ObserveCacheLookup(true)
	return true
}

func (r *CachedWebsiteRepository) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.WarnContext(ctx, "Failed to encode cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		logger.WarnContext(ctx, "Cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
