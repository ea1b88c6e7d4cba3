package domain

import "time"

// Route sources
const (
	RouteSourceDatabase   = "database"
	RouteSourceDirections = "directions"
	RouteSourceFallback   = "fallback"
)

// Route - упорядоченный маршрут мусоровоза; порядок точек задаёт направление движения
type Route struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Points    []Point   `json:"points"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

// Len возвращает количество точек маршрута
func (r *Route) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Points)
}

// TruckStatus - снимок симуляции мусоровоза на момент ComputedAt
type TruckStatus struct {
	RouteID     string    `json:"route_id"`
	Position    Point     `json:"position"`
	PointIndex  int       `json:"point_index"`
	RouteLength int       `json:"route_length"`
	Progress    float64   `json:"progress"`
	DistanceKm  float64   `json:"distance_km"`
	ETAMinutes  int       `json:"eta_minutes"`
	Arriving    bool      `json:"arriving"`
	ComputedAt  time.Time `json:"computed_at"`
}
