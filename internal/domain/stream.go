package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamTruckPosition = "stream:truck:position"
)

// TruckPositionEvent - событие с позицией мусоровоза, публикуемое трекером
type TruckPositionEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	TruckID    string    `json:"truck_id"`
	RouteID    string    `json:"route_id"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	PointIndex int       `json:"point_index"`
	ETAMinutes int       `json:"eta_minutes"`
	DistanceKm float64   `json:"distance_km"`
	Arriving   bool      `json:"arriving"`
	ComputedAt time.Time `json:"computed_at"`
}

// NewTruckPositionEvent собирает событие из снимка симуляции
func NewTruckPositionEvent(truckID string, status *TruckStatus) *TruckPositionEvent {
	return &TruckPositionEvent{
		EventID:    uuid.New(),
		TruckID:    truckID,
		RouteID:    status.RouteID,
		Lat:        status.Position.Lat,
		Lon:        status.Position.Lon,
		PointIndex: status.PointIndex,
		ETAMinutes: status.ETAMinutes,
		DistanceKm: status.DistanceKm,
		Arriving:   status.Arriving,
		ComputedAt: status.ComputedAt,
	}
}

// TruckLastPositionKey - ключ кеша с последним событием мусоровоза
func TruckLastPositionKey(truckID string) string {
	return "truck:last:" + truckID
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
