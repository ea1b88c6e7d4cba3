package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/pkg/errors"
	"github.com/conecta-coleta/internal/usecase/dto"
	"go.uber.org/zap"
)

// LocationUseCase - прямое и обратное геокодирование через внешний провайдер
type LocationUseCase struct {
	geocoder repository.GeocodingRepository
	logger   *zap.Logger
}

// NewLocationUseCase создаёт usecase; без провайдера все вызовы возвращают UPSTREAM_ERROR
func NewLocationUseCase(geocoder repository.GeocodingRepository, logger *zap.Logger) *LocationUseCase {
	return &LocationUseCase{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Geocode ищет координаты по адресу
func (uc *LocationUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	if uc.geocoder == nil {
		return nil, errors.ErrUpstreamError.WithMessage("Geocoding provider is not configured")
	}
	if req.Limit == 0 {
		req.Limit = 5
	}

	query := strings.TrimSpace(req.Query)
	results, err := uc.geocoder.Geocode(ctx, query, req.Limit)
	if err != nil {
		uc.logger.Error("Failed to geocode address", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrUpstreamError, err)
	}
	if len(results) == 0 {
		return nil, errors.ErrAddressNotFound.WithDetails(map[string]interface{}{
			"query": query,
		})
	}

	return &dto.GeocodeResponse{
		Query:   query,
		Results: results,
	}, nil
}

// ReverseGeocode ищет адреса по координате
func (uc *LocationUseCase) ReverseGeocode(ctx context.Context, req dto.ReverseGeocodeRequest) (*dto.GeocodeResponse, error) {
	point := domain.Point{Lat: req.Lat, Lon: req.Lon}
	if !point.Valid() {
		return nil, errors.ErrInvalidCoordinates
	}
	if uc.geocoder == nil {
		return nil, errors.ErrUpstreamError.WithMessage("Geocoding provider is not configured")
	}
	if req.Limit == 0 {
		req.Limit = 1
	}

	results, err := uc.geocoder.ReverseGeocode(ctx, point, req.Limit)
	if err != nil {
		uc.logger.Error("Failed to reverse geocode",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrUpstreamError, err)
	}

	return &dto.GeocodeResponse{
		Point:   &point,
		Results: results,
	}, nil
}
