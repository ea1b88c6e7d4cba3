package repository

import (
	"context"

	"github.com/conecta-coleta/internal/domain"
)

// DirectionsRepository строит маршрут по дорогам через внешний сервис
type DirectionsRepository interface {
	// GetDirections возвращает полилинию маршрута через заданные точки
	GetDirections(ctx context.Context, waypoints []domain.Point) ([]domain.Point, error)
}

// GeocodingRepository - прямое и обратное геокодирование
type GeocodingRepository interface {
	// Geocode возвращает координаты по тексту адреса
	Geocode(ctx context.Context, address string, limit int) ([]domain.GeocodedAddress, error)

	// ReverseGeocode возвращает адреса по координате
	ReverseGeocode(ctx context.Context, point domain.Point, limit int) ([]domain.GeocodedAddress, error)
}
