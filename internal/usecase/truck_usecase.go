package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/conecta-coleta/internal/config"
	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/metrics"
	apperrors "github.com/conecta-coleta/internal/pkg/errors"
	"github.com/conecta-coleta/internal/simulation"
	"github.com/conecta-coleta/internal/usecase/dto"
	"go.uber.org/zap"
)

// maxDirectionsWaypoints - больше точек Directions API за один запрос не принимает
const maxDirectionsWaypoints = 25

// TruckUseCase отдаёт симуляцию мусоровоза по маршруту.
// Обе модели (обратный отсчёт и положение) считаются независимо.
type TruckUseCase struct {
	routeRepo      repository.RouteRepository
	cacheRepo      repository.CacheRepository
	directions     repository.DirectionsRepository
	fallback       *domain.Route
	cycle          simulation.CycleConfig
	defaultRouteID string
	routeTTL       time.Duration
	now            func() time.Time
	logger         *zap.Logger
}

// NewTruckUseCase создаёт usecase симуляции.
// cacheRepo, directions и fallback могут быть nil.
func NewTruckUseCase(
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	directions repository.DirectionsRepository,
	fallback *domain.Route,
	simCfg config.SimulationConfig,
	routeTTL time.Duration,
	logger *zap.Logger,
) *TruckUseCase {
	return &TruckUseCase{
		routeRepo:  routeRepo,
		cacheRepo:  cacheRepo,
		directions: directions,
		fallback:   fallback,
		cycle: simulation.CycleConfig{
			CycleDurationMinutes: simCfg.CycleDurationMinutes,
			MaxDistanceKm:        simCfg.MaxDistanceKm,
			AverageSpeedKmh:      simCfg.AverageSpeedKmh,
		},
		defaultRouteID: simCfg.DefaultRouteID,
		routeTTL:       routeTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// WithClock подменяет источник времени
func (uc *TruckUseCase) WithClock(now func() time.Time) *TruckUseCase {
	uc.now = now
	return uc
}

// GetCountdown считает обратный отсчёт. Маршрут на результат не влияет.
func (uc *TruckUseCase) GetCountdown(ctx context.Context) (*dto.CountdownResponse, error) {
	now := uc.now()

	countdown, err := simulation.ComputeCountdown(now, uc.cycle)
	if err != nil {
		uc.logger.Error("Failed to compute countdown", zap.Error(err))
		return nil, err
	}

	return &dto.CountdownResponse{
		Progress:          countdown.Progress,
		RemainingFraction: countdown.RemainingFraction,
		DistanceKm:        countdown.DistanceKm,
		ETAMinutes:        countdown.ETAMinutes,
		Arriving:          countdown.Arriving,
		CycleMinutes:      uc.cycle.CycleDurationMinutes,
		ComputedAt:        now,
	}, nil
}

// GetPosition возвращает вершину маршрута, на которой сейчас мусоровоз
func (uc *TruckUseCase) GetPosition(ctx context.Context, routeID string) (*dto.PositionResponse, error) {
	route, err := uc.ResolveRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	pos, err := simulation.PositionOnRoute(now, route.Points, uc.cycle.CycleDurationMinutes)
	if err != nil {
		uc.logger.Error("Failed to compute position",
			zap.String("route_id", route.ID),
			zap.Error(err))
		return nil, err
	}

	return &dto.PositionResponse{
		RouteID:     route.ID,
		RouteSource: route.Source,
		Position:    pos.Point,
		PointIndex:  pos.Index,
		RouteLength: route.Len(),
		Progress:    pos.Progress,
		ComputedAt:  now,
	}, nil
}

// GetStatus объединяет обе модели на один момент времени
func (uc *TruckUseCase) GetStatus(ctx context.Context, routeID string) (*domain.TruckStatus, error) {
	route, err := uc.ResolveRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	countdown, err := simulation.ComputeCountdown(now, uc.cycle)
	if err != nil {
		return nil, err
	}
	pos, err := simulation.PositionOnRoute(now, route.Points, uc.cycle.CycleDurationMinutes)
	if err != nil {
		return nil, err
	}

	return &domain.TruckStatus{
		RouteID:     route.ID,
		Position:    pos.Point,
		PointIndex:  pos.Index,
		RouteLength: route.Len(),
		Progress:    pos.Progress,
		DistanceKm:  countdown.DistanceKm,
		ETAMinutes:  countdown.ETAMinutes,
		Arriving:    countdown.Arriving,
		ComputedAt:  now,
	}, nil
}

// GetLastPosition возвращает последнее опубликованное трекером событие
func (uc *TruckUseCase) GetLastPosition(ctx context.Context, truckID string) (*domain.TruckPositionEvent, error) {
	if uc.cacheRepo == nil {
		return nil, apperrors.ErrTruckPositionNotFound
	}

	data, err := uc.cacheRepo.Get(ctx, domain.TruckLastPositionKey(truckID))
	if err != nil {
		uc.logger.Error("Failed to get last truck position", zap.String("truck_id", truckID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCacheError, err)
	}
	if data == nil {
		return nil, apperrors.ErrTruckPositionNotFound.WithDetails(map[string]interface{}{
			"truck_id": truckID,
		})
	}

	var event domain.TruckPositionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: corrupted position: %v", apperrors.ErrCacheError, err)
	}
	return &event, nil
}

// ResolveRoute ищет маршрут: кеш -> хранилище (+ Directions) -> резервный маршрут.
// Резервный маршрут отдаётся только для маршрута по умолчанию.
func (uc *TruckUseCase) ResolveRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	if routeID == "" {
		routeID = uc.defaultRouteID
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetRoute(ctx, routeID)
		if err != nil {
			uc.logger.Warn("Failed to get route from cache", zap.String("route_id", routeID), zap.Error(err))
		} else if cached.Len() > 0 {
			metrics.RouteResolutionsTotal.WithLabelValues("cache").Inc()
			return cached, nil
		}
	}

	route, err := uc.routeRepo.GetRoute(ctx, routeID)
	switch {
	case err == nil && route.Len() > 0:
		route.Source = domain.RouteSourceDatabase
		uc.snapToRoads(ctx, route)
	case err != nil && !errors.Is(err, apperrors.ErrRouteNotFound):
		uc.logger.Error("Failed to load route", zap.String("route_id", routeID), zap.Error(err))
		if routeID != uc.defaultRouteID || uc.fallback == nil {
			return nil, err
		}
		route = uc.fallbackRoute()
	default:
		if routeID != uc.defaultRouteID || uc.fallback == nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRouteNotFound, routeID)
		}
		route = uc.fallbackRoute()
	}

	metrics.RouteResolutionsTotal.WithLabelValues(route.Source).Inc()

	if uc.cacheRepo != nil && route.Source != domain.RouteSourceFallback {
		if err := uc.cacheRepo.SetRoute(ctx, route, uc.routeTTL); err != nil {
			uc.logger.Warn("Failed to cache route", zap.String("route_id", route.ID), zap.Error(err))
		}
	}

	return route, nil
}

// snapToRoads заменяет опорные точки маршрута полилинией по дорогам.
// При ошибке провайдера маршрут остаётся как есть.
func (uc *TruckUseCase) snapToRoads(ctx context.Context, route *domain.Route) {
	if uc.directions == nil || route.Len() < 2 || route.Len() > maxDirectionsWaypoints {
		return
	}

	polyline, err := uc.directions.GetDirections(ctx, route.Points)
	if err != nil {
		uc.logger.Warn("Directions provider failed, using stored waypoints",
			zap.String("route_id", route.ID),
			zap.Error(err))
		return
	}
	if len(polyline) == 0 {
		return
	}

	route.Points = polyline
	route.Source = domain.RouteSourceDirections
}

func (uc *TruckUseCase) fallbackRoute() *domain.Route {
	route := *uc.fallback
	route.Points = append([]domain.Point(nil), uc.fallback.Points...)
	route.Source = domain.RouteSourceFallback
	return &route
}
