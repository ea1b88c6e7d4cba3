// Package simulation вычисляет симулированное положение и ETA мусоровоза
// как чистую функцию от текущего времени. Состояния и таймеров нет:
// вызывающая сторона сама решает, как часто пересчитывать.
package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/pkg/errors"
)

// etaEpsilon влияет только на случай, когда минуты должны быть ровно целыми,
// а float-шум даёт чуть больше (например 5.000000000001 -> 6). На остальные значения
// ceil(x - etaEpsilon) == ceil(x).
const etaEpsilon = 1e-9

// CycleConfig - неизменяемые параметры цикла симуляции
type CycleConfig struct {
	CycleDurationMinutes float64 `json:"cycle_duration_minutes"`
	MaxDistanceKm        float64 `json:"max_distance_km"`
	AverageSpeedKmh      float64 `json:"average_speed_kmh"`
}

// Validate проверяет параметры обратного отсчёта
func (c CycleConfig) Validate() error {
	if err := validateCycle(c.CycleDurationMinutes); err != nil {
		return err
	}
	if !(c.MaxDistanceKm >= 0) || math.IsInf(c.MaxDistanceKm, 0) {
		return fmt.Errorf("%w: max distance must be >= 0, got %v", errors.ErrInvalidConfig, c.MaxDistanceKm)
	}
	if !(c.AverageSpeedKmh > 0) || math.IsInf(c.AverageSpeedKmh, 0) {
		return fmt.Errorf("%w: average speed must be > 0, got %v", errors.ErrInvalidConfig, c.AverageSpeedKmh)
	}
	return nil
}

// Countdown - результат модели обратного отсчёта
type Countdown struct {
	Progress          float64 `json:"progress"`
	RemainingFraction float64 `json:"remaining_fraction"`
	DistanceKm        float64 `json:"distance_km"`
	ETAMinutes        int     `json:"eta_minutes"`
	Arriving          bool    `json:"arriving"`
}

// Position - результат модели положения на маршруте
type Position struct {
	Point    domain.Point `json:"point"`
	Index    int          `json:"index"`
	Progress float64      `json:"progress"`
}

func validateCycle(minutes float64) error {
	if !(minutes > 0) || math.IsInf(minutes, 0) {
		return fmt.Errorf("%w: cycle duration must be > 0, got %v", errors.ErrInvalidConfig, minutes)
	}
	return nil
}

// CycleProgress возвращает долю пройденного цикла в [0, 1).
// Цикл привязан к Unix-эпохе и повторяется каждые cycleMinutes.
func CycleProgress(now time.Time, cycleMinutes float64) (float64, error) {
	if err := validateCycle(cycleMinutes); err != nil {
		return 0, err
	}

	cycleMs := cycleMinutes * 60_000
	elapsed := math.Mod(float64(now.UnixMilli()), cycleMs)
	if elapsed < 0 {
		elapsed += cycleMs
	}

	progress := elapsed / cycleMs
	if progress >= 1 {
		progress = 0
	}
	return progress, nil
}

// ComputeCountdown считает оставшееся расстояние и ETA по модели обратного отсчёта.
// Расстояние линейно убывает от MaxDistanceKm до нуля за цикл, затем сбрасывается.
// С геометрией маршрута модель не связана.
func ComputeCountdown(now time.Time, cfg CycleConfig) (Countdown, error) {
	if err := cfg.Validate(); err != nil {
		return Countdown{}, err
	}

	progress, err := CycleProgress(now, cfg.CycleDurationMinutes)
	if err != nil {
		return Countdown{}, err
	}

	remaining := 1 - progress
	distanceKm := remaining * cfg.MaxDistanceKm
	timeHours := distanceKm / cfg.AverageSpeedKmh

	eta := int(math.Ceil(timeHours*60 - etaEpsilon))
	if eta < 1 {
		eta = 0
	}

	return Countdown{
		Progress:          progress,
		RemainingFraction: remaining,
		DistanceKm:        distanceKm,
		ETAMinutes:        eta,
		Arriving:          eta == 0,
	}, nil
}

// PositionOnRoute возвращает точку маршрута, на которой находится мусоровоз.
// Точки не интерполируются: позиция перескакивает между вершинами маршрута.
func PositionOnRoute(now time.Time, route []domain.Point, cycleMinutes float64) (Position, error) {
	if len(route) == 0 {
		return Position{}, fmt.Errorf("%w: empty route", errors.ErrInvalidRoute)
	}

	progress, err := CycleProgress(now, cycleMinutes)
	if err != nil {
		return Position{}, err
	}

	index := int(math.Floor(progress * float64(len(route)-1)))
	if index < 0 {
		index = 0
	}
	if index > len(route)-1 {
		index = len(route) - 1
	}

	return Position{
		Point:    route[index],
		Index:    index,
		Progress: progress,
	}, nil
}
