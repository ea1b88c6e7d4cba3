package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	apperrors "github.com/conecta-coleta/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetRoute возвращает маршрут; точки упорядочены по seq
func (r *routeRepository) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	var route domain.Route
	err := r.db.GetContext(ctx, &route,
		`SELECT id, name, source, created_at FROM routes WHERE id = $1`, routeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route", zap.String("route_id", routeID), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	var points []domain.Point
	err = r.db.SelectContext(ctx, &points,
		`SELECT lat, lon FROM route_points WHERE route_id = $1 ORDER BY seq`, routeID)
	if err != nil {
		r.logger.Error("Failed to get route points", zap.String("route_id", routeID), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	if len(points) == 0 {
		return nil, apperrors.ErrRouteNotFound
	}
	route.Points = points

	return &route, nil
}

// SaveRoute заменяет маршрут и все его точки в одной транзакции
func (r *routeRepository) SaveRoute(ctx context.Context, route *domain.Route) error {
	if route.Len() == 0 {
		return apperrors.ErrInvalidRoute
	}

	lats := make([]float64, len(route.Points))
	lons := make([]float64, len(route.Points))
	for i, p := range route.Points {
		lats[i] = p.Lat
		lons[i] = p.Lon
	}

	source := route.Source
	if source == "" {
		source = domain.RouteSourceDatabase
	}

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO routes (id, name, source) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, source = EXCLUDED.source
		`, route.ID, route.Name, source); err != nil {
			return fmt.Errorf("upsert route: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM route_points WHERE route_id = $1`, route.ID); err != nil {
			return fmt.Errorf("delete route points: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO route_points (route_id, seq, lat, lon)
			SELECT $1, (p.ord - 1)::int, p.lat, p.lon
			FROM unnest($2::float8[], $3::float8[]) WITH ORDINALITY AS p(lat, lon, ord)
		`, route.ID, pq.Array(lats), pq.Array(lons)); err != nil {
			return fmt.Errorf("insert route points: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save route", zap.String("route_id", route.ID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	r.logger.Info("Route saved",
		zap.String("route_id", route.ID),
		zap.Int("points", len(route.Points)))
	return nil
}

func (r *routeRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
