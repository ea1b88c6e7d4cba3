package dto

import "github.com/conecta-coleta/internal/domain"

// RankRequest - запрос на ранжирование пунктов приёма по расстоянию.
// Точка отсчёта задаётся координатами или адресом.
type RankRequest struct {
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Address  string   `json:"address,omitempty" validate:"omitempty,min=3,max=200"`
	Category string   `json:"category,omitempty" validate:"omitempty,disposal_category"`
	Search   string   `json:"search,omitempty" validate:"omitempty,max=100"`
	Limit    int      `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// RankResponse - отсортированный по расстоянию список пунктов
type RankResponse struct {
	Origin domain.Point         `json:"origin"`
	Filter string               `json:"filter"`
	Total  int                  `json:"total"` // подошло под фильтр, до обрезки по limit
	Points []domain.RankedPoint `json:"points"`
}

// NearestResponse - ближайший пункт; Point == nil, если ни один не подошёл
type NearestResponse struct {
	Origin domain.Point        `json:"origin"`
	Filter string              `json:"filter"`
	Point  *domain.RankedPoint `json:"point"`
}
