package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/metrics"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const routeKeyPrefix = "route:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMissesTotal.Inc()
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	metrics.CacheHitsTotal.Inc()
	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetRoute получает маршрут из кеша
func (r *cacheRepository) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	data, err := r.Get(ctx, routeKeyPrefix+routeID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var route domain.Route
	if err := json.Unmarshal(data, &route); err != nil {
		r.logger.Error("Failed to unmarshal route from cache", zap.String("route_id", routeID), zap.Error(err))
		return nil, fmt.Errorf("unmarshal route: %w", err)
	}

	return &route, nil
}

// SetRoute сохраняет маршрут в кеше
func (r *cacheRepository) SetRoute(ctx context.Context, route *domain.Route, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		r.logger.Error("Failed to marshal route", zap.String("route_id", route.ID), zap.Error(err))
		return fmt.Errorf("marshal route: %w", err)
	}

	return r.Set(ctx, routeKeyPrefix+route.ID, data, ttl)
}
