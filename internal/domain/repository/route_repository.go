package repository

import (
	"context"

	"github.com/conecta-coleta/internal/domain"
)

// RouteRepository определяет методы для хранения маршрутов мусоровоза
type RouteRepository interface {
	// GetRoute возвращает маршрут с точками в порядке движения
	GetRoute(ctx context.Context, routeID string) (*domain.Route, error)

	// SaveRoute сохраняет маршрут, заменяя точки целиком
	SaveRoute(ctx context.Context, route *domain.Route) error
}
