// Package catalog хранит статический справочник пунктов приёма и резервный маршрут в памяти.
package catalog

import (
	"context"
	"sync"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/pkg/errors"
)

type disposalPointRepository struct {
	mu     sync.RWMutex
	points []domain.DisposalPoint
}

// NewDisposalPointRepository создаёт репозиторий на встроенном справочнике Recife
func NewDisposalPointRepository() repository.DisposalPointRepository {
	return NewDisposalPointRepositoryWith(DefaultPoints())
}

// NewDisposalPointRepositoryWith создаёт репозиторий на переданных пунктах
func NewDisposalPointRepositoryWith(points []domain.DisposalPoint) repository.DisposalPointRepository {
	return &disposalPointRepository{points: clonePoints(points)}
}

// DefaultPoints возвращает копию встроенного справочника
func DefaultPoints() []domain.DisposalPoint {
	return clonePoints(defaultPoints)
}

func (r *disposalPointRepository) List(_ context.Context, category domain.DisposalCategory) ([]domain.DisposalPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.DisposalPoint, 0, len(r.points))
	for _, p := range r.points {
		if category != "" && p.Category != category {
			continue
		}
		result = append(result, clonePoint(p))
	}
	return result, nil
}

func (r *disposalPointRepository) GetByID(_ context.Context, id string) (*domain.DisposalPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.points {
		if p.ID == id {
			cp := clonePoint(p)
			return &cp, nil
		}
	}
	return nil, errors.ErrDisposalPointNotFound
}

func (r *disposalPointRepository) Upsert(_ context.Context, point *domain.DisposalPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.points {
		if p.ID == point.ID {
			r.points[i] = clonePoint(*point)
			return nil
		}
	}
	r.points = append(r.points, clonePoint(*point))
	return nil
}

type routeRepository struct {
	mu     sync.RWMutex
	routes map[string]domain.Route
}

// NewRouteRepository создаёт репозиторий маршрутов с резервным маршрутом
func NewRouteRepository() repository.RouteRepository {
	return &routeRepository{
		routes: map[string]domain.Route{
			fallbackRoute.ID: cloneRoute(fallbackRoute),
		},
	}
}

// FallbackRoute возвращает копию резервного маршрута
func FallbackRoute() *domain.Route {
	r := cloneRoute(fallbackRoute)
	return &r
}

func (r *routeRepository) GetRoute(_ context.Context, routeID string) (*domain.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	route, ok := r.routes[routeID]
	if !ok {
		return nil, errors.ErrRouteNotFound
	}
	cp := cloneRoute(route)
	return &cp, nil
}

func (r *routeRepository) SaveRoute(_ context.Context, route *domain.Route) error {
	if route.Len() == 0 {
		return errors.ErrInvalidRoute
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.routes[route.ID] = cloneRoute(*route)
	return nil
}

func clonePoint(p domain.DisposalPoint) domain.DisposalPoint {
	p.Materials = append([]string(nil), p.Materials...)
	return p
}

func clonePoints(points []domain.DisposalPoint) []domain.DisposalPoint {
	result := make([]domain.DisposalPoint, len(points))
	for i, p := range points {
		result[i] = clonePoint(p)
	}
	return result
}

func cloneRoute(r domain.Route) domain.Route {
	r.Points = append([]domain.Point(nil), r.Points...)
	return r
}
