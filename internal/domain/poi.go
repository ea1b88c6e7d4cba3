package domain

import (
	"strings"
	"time"
)

// DisposalCategory - тип пункта приёма отходов
type DisposalCategory string

const (
	// CategoryEcoponto - муниципальный пункт приёма крупногабаритных и перерабатываемых отходов
	CategoryEcoponto DisposalCategory = "ecoponto"
	// CategoryReciclagem - пункт добровольной сдачи вторсырья (PEV), обычно в магазинах
	CategoryReciclagem DisposalCategory = "reciclagem"
)

// Valid проверяет, что категория известна
func (c DisposalCategory) Valid() bool {
	return c == CategoryEcoponto || c == CategoryReciclagem
}

// ParseDisposalCategory нормализует строку категории
func ParseDisposalCategory(s string) (DisposalCategory, bool) {
	c := DisposalCategory(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// DisposalPoint - пункт приёма отходов (ecoponto или PEV)
type DisposalPoint struct {
	ID           string           `json:"id" db:"id"`
	Category     DisposalCategory `json:"category" db:"category"`
	Title        string           `json:"title" db:"title"`
	Address      string           `json:"address" db:"address"`
	OpeningHours string           `json:"opening_hours" db:"opening_hours"`
	Lat          float64          `json:"lat" db:"lat"`
	Lon          float64          `json:"lon" db:"lon"`
	Materials    []string         `json:"materials" db:"materials"`
	UpdatedAt    time.Time        `json:"updated_at,omitempty" db:"updated_at"`
}

// Location возвращает координату пункта
func (p DisposalPoint) Location() Point {
	return Point{Lat: p.Lat, Lon: p.Lon}
}

// RankedPoint - пункт приёма с расстоянием до точки отсчёта; не сохраняется
type RankedPoint struct {
	DisposalPoint
	DistanceKm float64 `json:"distance_km"`
}
