package dto

import (
	"time"

	"github.com/conecta-coleta/internal/domain"
)

// TruckQuery - параметры запросов к симуляции мусоровоза
type TruckQuery struct {
	RouteID string `query:"route_id" validate:"omitempty,max=64"`
}

// LastPositionQuery - запрос последней опубликованной позиции
type LastPositionQuery struct {
	TruckID string `query:"truck_id" validate:"required,max=64"`
}

// CountdownResponse - результат модели обратного отсчёта
type CountdownResponse struct {
	Progress          float64   `json:"progress"`
	RemainingFraction float64   `json:"remaining_fraction"`
	DistanceKm        float64   `json:"distance_km"`
	ETAMinutes        int       `json:"eta_minutes"`
	Arriving          bool      `json:"arriving"`
	CycleMinutes      float64   `json:"cycle_minutes"`
	ComputedAt        time.Time `json:"computed_at"`
}

// PositionResponse - положение мусоровоза на маршруте
type PositionResponse struct {
	RouteID     string       `json:"route_id"`
	RouteSource string       `json:"route_source"`
	Position    domain.Point `json:"position"`
	PointIndex  int          `json:"point_index"`
	RouteLength int          `json:"route_length"`
	Progress    float64      `json:"progress"`
	ComputedAt  time.Time    `json:"computed_at"`
}
