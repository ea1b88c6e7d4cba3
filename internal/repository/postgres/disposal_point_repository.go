package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	apperrors "github.com/conecta-coleta/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type disposalPointRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDisposalPointRepository(db *DB) repository.DisposalPointRepository {
	return &disposalPointRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type disposalPointRow struct {
	ID           string         `db:"id"`
	Category     string         `db:"category"`
	Title        string         `db:"title"`
	Address      string         `db:"address"`
	OpeningHours string         `db:"opening_hours"`
	Lat          float64        `db:"lat"`
	Lon          float64        `db:"lon"`
	Materials    pq.StringArray `db:"materials"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r disposalPointRow) toDomain() domain.DisposalPoint {
	return domain.DisposalPoint{
		ID:           r.ID,
		Category:     domain.DisposalCategory(r.Category),
		Title:        r.Title,
		Address:      r.Address,
		OpeningHours: r.OpeningHours,
		Lat:          r.Lat,
		Lon:          r.Lon,
		Materials:    []string(r.Materials),
		UpdatedAt:    r.UpdatedAt,
	}
}

const disposalPointColumns = `id, category, title, address, opening_hours, lat, lon, materials, updated_at`

// List возвращает пункты в порядке каталога (sort_order), чтобы сортировка по расстоянию была стабильной
func (r *disposalPointRepository) List(ctx context.Context, category domain.DisposalCategory) ([]domain.DisposalPoint, error) {
	query := `
		SELECT ` + disposalPointColumns + `
		FROM disposal_points
		WHERE ($1 = '' OR category = $1)
		ORDER BY sort_order, id
	`

	var rows []disposalPointRow
	if err := r.db.SelectContext(ctx, &rows, query, string(category)); err != nil {
		r.logger.Error("Failed to list disposal points",
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	result := make([]domain.DisposalPoint, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	r.logger.Debug("Disposal points listed",
		zap.String("category", string(category)),
		zap.Int("count", len(result)))
	return result, nil
}

func (r *disposalPointRepository) GetByID(ctx context.Context, id string) (*domain.DisposalPoint, error) {
	query := `SELECT ` + disposalPointColumns + ` FROM disposal_points WHERE id = $1`

	var row disposalPointRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrDisposalPointNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get disposal point", zap.String("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	point := row.toDomain()
	return &point, nil
}

func (r *disposalPointRepository) Upsert(ctx context.Context, point *domain.DisposalPoint) error {
	query := `
		INSERT INTO disposal_points (id, category, title, address, opening_hours, lat, lon, materials, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (id) DO UPDATE SET
			category = EXCLUDED.category,
			title = EXCLUDED.title,
			address = EXCLUDED.address,
			opening_hours = EXCLUDED.opening_hours,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			materials = EXCLUDED.materials,
			updated_at = now()
	`

	materials := point.Materials
	if materials == nil {
		materials = []string{}
	}

	_, err := r.db.ExecContext(ctx, query,
		point.ID, string(point.Category), point.Title, point.Address, point.OpeningHours,
		point.Lat, point.Lon, pq.Array(materials),
	)
	if err != nil {
		r.logger.Error("Failed to upsert disposal point", zap.String("id", point.ID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}
