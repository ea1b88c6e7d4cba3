// Package proximity ранжирует пункты приёма отходов по расстоянию от точки отсчёта.
package proximity

import (
	"fmt"
	"sort"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/pkg/errors"
)

// Rank фильтрует пункты, считает расстояние от origin и сортирует по возрастанию.
// Порядок равноудалённых пунктов сохраняется; входной слайс не изменяется.
func Rank(origin domain.Point, points []domain.DisposalPoint, filter Filter) ([]domain.RankedPoint, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: origin (%v, %v) out of range", errors.ErrInvalidCoordinates, origin.Lat, origin.Lon)
	}

	ranked := make([]domain.RankedPoint, 0, len(points))
	for _, p := range points {
		if filter != nil && !filter.Match(p) {
			continue
		}
		ranked = append(ranked, domain.RankedPoint{
			DisposalPoint: clonePoint(p),
			DistanceKm:    Haversine(origin, p.Location()),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked, nil
}

// Nearest возвращает ближайший пункт или nil, если после фильтра ничего не осталось
func Nearest(origin domain.Point, points []domain.DisposalPoint, filter Filter) (*domain.RankedPoint, error) {
	ranked, err := Rank(origin, points, filter)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}

func clonePoint(p domain.DisposalPoint) domain.DisposalPoint {
	if p.Materials != nil {
		p.Materials = append([]string(nil), p.Materials...)
	}
	return p
}
