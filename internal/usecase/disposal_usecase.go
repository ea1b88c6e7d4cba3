package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/metrics"
	apperrors "github.com/conecta-coleta/internal/pkg/errors"
	"github.com/conecta-coleta/internal/proximity"
	"github.com/conecta-coleta/internal/usecase/dto"
	"go.uber.org/zap"
)

const catalogKeyPrefix = "catalog:"

// DisposalUseCase ранжирует пункты приёма вокруг точки пользователя
type DisposalUseCase struct {
	pointRepo repository.DisposalPointRepository
	cacheRepo repository.CacheRepository
	geocoder  repository.GeocodingRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewDisposalUseCase создаёт usecase; cacheRepo и geocoder могут быть nil
func NewDisposalUseCase(
	pointRepo repository.DisposalPointRepository,
	cacheRepo repository.CacheRepository,
	geocoder repository.GeocodingRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DisposalUseCase {
	return &DisposalUseCase{
		pointRepo: pointRepo,
		cacheRepo: cacheRepo,
		geocoder:  geocoder,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Rank возвращает пункты, отсортированные по расстоянию от точки отсчёта
func (uc *DisposalUseCase) Rank(ctx context.Context, req dto.RankRequest) (*dto.RankResponse, error) {
	origin, filter, points, err := uc.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	ranked, err := proximity.Rank(origin, points, filter)
	if err != nil {
		return nil, err
	}

	// Total - все подошедшие под фильтр пункты, до обрезки по Limit
	total := len(ranked)
	if req.Limit > 0 && total > req.Limit {
		ranked = ranked[:req.Limit]
	}

	return &dto.RankResponse{
		Origin: origin,
		Filter: filterName(filter),
		Total:  total,
		Points: ranked,
	}, nil
}

// Nearest возвращает ближайший подходящий пункт
func (uc *DisposalUseCase) Nearest(ctx context.Context, req dto.RankRequest) (*dto.NearestResponse, error) {
	origin, filter, points, err := uc.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	nearest, err := proximity.Nearest(origin, points, filter)
	if err != nil {
		return nil, err
	}

	return &dto.NearestResponse{
		Origin: origin,
		Filter: filterName(filter),
		Point:  nearest,
	}, nil
}

// GetByID возвращает пункт каталога
func (uc *DisposalUseCase) GetByID(ctx context.Context, id string) (*domain.DisposalPoint, error) {
	point, err := uc.pointRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDisposalPointNotFound) {
			uc.logger.Error("Failed to get disposal point", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return point, nil
}

func (uc *DisposalUseCase) prepare(ctx context.Context, req dto.RankRequest) (domain.Point, proximity.Filter, []domain.DisposalPoint, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return domain.Point{}, nil, nil, err
	}
	metrics.RankRequestsTotal.WithLabelValues(filterName(filter)).Inc()

	origin, err := uc.resolveOrigin(ctx, req)
	if err != nil {
		return domain.Point{}, nil, nil, err
	}

	// Категорию отбираем уже в хранилище; фильтр повторно применится в ранжировании
	var category domain.DisposalCategory
	if exact, ok := filter.(proximity.ExactCategory); ok {
		category = exact.Category
	}

	points, err := uc.listPoints(ctx, category)
	if err != nil {
		return domain.Point{}, nil, nil, err
	}

	return origin, filter, points, nil
}

// buildFilter собирает фильтр из запроса; одновременно категория и поиск не допускаются
func buildFilter(req dto.RankRequest) (proximity.Filter, error) {
	search := strings.TrimSpace(req.Search)

	switch {
	case req.Category != "" && search != "":
		return nil, apperrors.ErrInvalidFilter.WithMessage("Use either category or search, not both")
	case req.Category != "":
		category, ok := domain.ParseDisposalCategory(req.Category)
		if !ok {
			return nil, apperrors.ErrInvalidFilter.WithDetails(map[string]interface{}{
				"category": req.Category,
			})
		}
		return proximity.ExactCategory{Category: category}, nil
	case search != "":
		return proximity.TagSearch{Text: search}, nil
	default:
		return nil, nil
	}
}

func filterName(f proximity.Filter) string {
	switch f.(type) {
	case proximity.ExactCategory:
		return "category"
	case proximity.TagSearch:
		return "search"
	default:
		return "none"
	}
}

func (uc *DisposalUseCase) resolveOrigin(ctx context.Context, req dto.RankRequest) (domain.Point, error) {
	if req.Lat != nil || req.Lon != nil {
		if req.Lat == nil || req.Lon == nil {
			return domain.Point{}, apperrors.ErrInvalidCoordinates.WithMessage("Both lat and lon are required")
		}
		return domain.Point{Lat: *req.Lat, Lon: *req.Lon}, nil
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return domain.Point{}, apperrors.ErrInvalidRequest.WithMessage("Either coordinates or address is required")
	}
	if uc.geocoder == nil {
		return domain.Point{}, apperrors.ErrUpstreamError.WithMessage("Geocoding provider is not configured")
	}

	results, err := uc.geocoder.Geocode(ctx, address, 1)
	if err != nil {
		uc.logger.Error("Failed to geocode origin", zap.String("address", address), zap.Error(err))
		return domain.Point{}, fmt.Errorf("%w: %v", apperrors.ErrUpstreamError, err)
	}
	if len(results) == 0 {
		return domain.Point{}, apperrors.ErrAddressNotFound.WithDetails(map[string]interface{}{
			"address": address,
		})
	}

	uc.logger.Debug("Origin geocoded",
		zap.String("address", address),
		zap.Float64("lat", results[0].Point.Lat),
		zap.Float64("lon", results[0].Point.Lon))

	return results[0].Point, nil
}

// listPoints читает каталог через кеш; ошибки кеша не прерывают запрос
func (uc *DisposalUseCase) listPoints(ctx context.Context, category domain.DisposalCategory) ([]domain.DisposalPoint, error) {
	key := catalogKeyPrefix + string(category)
	if category == "" {
		key = catalogKeyPrefix + "all"
	}

	if uc.cacheRepo != nil {
		data, err := uc.cacheRepo.Get(ctx, key)
		if err != nil {
			uc.logger.Warn("Failed to get catalog from cache", zap.String("key", key), zap.Error(err))
		} else if data != nil {
			var points []domain.DisposalPoint
			if err := json.Unmarshal(data, &points); err == nil {
				return points, nil
			}
			uc.logger.Warn("Corrupted catalog in cache", zap.String("key", key))
		}
	}

	points, err := uc.pointRepo.List(ctx, category)
	if err != nil {
		uc.logger.Error("Failed to list disposal points", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil && uc.cacheTTL > 0 {
		if data, err := json.Marshal(points); err == nil {
			if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache catalog", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return points, nil
}
