package dto

import "github.com/conecta-coleta/internal/domain"

// GeocodeRequest - запрос на прямое геокодирование
type GeocodeRequest struct {
	Query string `query:"q" validate:"required,min=3,max=200"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=10"`
}

// ReverseGeocodeRequest - запрос на обратное геокодирование
type ReverseGeocodeRequest struct {
	Lat   float64 `query:"lat" validate:"min=-90,max=90"`
	Lon   float64 `query:"lon" validate:"min=-180,max=180"`
	Limit int     `query:"limit" validate:"omitempty,min=1,max=10"`
}

// GeocodeResponse - результаты геокодирования
type GeocodeResponse struct {
	Query   string                   `json:"query,omitempty"`
	Point   *domain.Point            `json:"point,omitempty"`
	Results []domain.GeocodedAddress `json:"results"`
}
