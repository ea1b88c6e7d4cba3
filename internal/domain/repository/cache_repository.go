package repository

import (
	"context"
	"time"

	"github.com/conecta-coleta/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetRoute получает маршрут из кеша
	GetRoute(ctx context.Context, routeID string) (*domain.Route, error)

	// SetRoute сохраняет маршрут в кеше
	SetRoute(ctx context.Context, route *domain.Route, ttl time.Duration) error
}
