package simulation

import (
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cycleMs = int64(20 * 60_000)

var defaultCycle = CycleConfig{
	CycleDurationMinutes: 20,
	MaxDistanceKm:        10,
	AverageSpeedKmh:      30,
}

// atCycleOffset returns an instant offsetMs into the k-th cycle since epoch.
func atCycleOffset(k, offsetMs int64) time.Time {
	return time.UnixMilli(k*cycleMs + offsetMs).UTC()
}

func TestComputeCountdown(t *testing.T) {
	t.Run("cycle boundary reports max distance", func(t *testing.T) {
		cd, err := ComputeCountdown(atCycleOffset(1_450_000, 0), defaultCycle)
		require.NoError(t, err)

		assert.Equal(t, 0.0, cd.Progress)
		assert.Equal(t, 10.0, cd.DistanceKm)
		assert.Equal(t, 20, cd.ETAMinutes)
		assert.False(t, cd.Arriving)
	})

	t.Run("95 percent through the cycle", func(t *testing.T) {
		cd, err := ComputeCountdown(atCycleOffset(1_450_000, 1_140_000), defaultCycle)
		require.NoError(t, err)

		assert.InDelta(t, 0.95, cd.Progress, 1e-12)
		assert.InDelta(t, 0.05, cd.RemainingFraction, 1e-12)
		assert.InDelta(t, 0.5, cd.DistanceKm, 1e-9)
		assert.Equal(t, 1, cd.ETAMinutes)
	})

	t.Run("last millisecond still rounds up to one minute", func(t *testing.T) {
		cd, err := ComputeCountdown(atCycleOffset(3, cycleMs-1), defaultCycle)
		require.NoError(t, err)

		assert.Greater(t, cd.DistanceKm, 0.0)
		assert.Equal(t, 1, cd.ETAMinutes)
		assert.False(t, cd.Arriving)
	})

	t.Run("whole minutes are not rounded up", func(t *testing.T) {
		// 0.7 of the cycle: 3 km left at 30 km/h is 6 minutes, float math gives 6.000000000000001
		cd, err := ComputeCountdown(atCycleOffset(1_450_000, cycleMs*7/10), defaultCycle)
		require.NoError(t, err)
		assert.Greater(t, cd.DistanceKm/defaultCycle.AverageSpeedKmh*60, 6.0)
		assert.Equal(t, 6, cd.ETAMinutes)

		// just past a whole minute still rounds up
		cd, err = ComputeCountdown(atCycleOffset(1_450_000, cycleMs*7/10-1000), defaultCycle)
		require.NoError(t, err)
		assert.Equal(t, 7, cd.ETAMinutes)
	})

	t.Run("snaps back to max after restart", func(t *testing.T) {
		before, err := ComputeCountdown(atCycleOffset(7, cycleMs-1), defaultCycle)
		require.NoError(t, err)
		after, err := ComputeCountdown(atCycleOffset(8, 0), defaultCycle)
		require.NoError(t, err)

		assert.Less(t, before.ETAMinutes, after.ETAMinutes)
		assert.Equal(t, 20, after.ETAMinutes)
	})

	t.Run("zero max distance is always arriving", func(t *testing.T) {
		cfg := defaultCycle
		cfg.MaxDistanceKm = 0

		cd, err := ComputeCountdown(atCycleOffset(2, 1000), cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, cd.ETAMinutes)
		assert.True(t, cd.Arriving)
	})

	t.Run("instants before epoch stay in range", func(t *testing.T) {
		cd, err := ComputeCountdown(time.UnixMilli(-1), defaultCycle)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, cd.Progress, 0.0)
		assert.Less(t, cd.Progress, 1.0)
		assert.Equal(t, 1, cd.ETAMinutes)
	})
}

func TestComputeCountdown_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  CycleConfig
	}{
		{"zero cycle", CycleConfig{CycleDurationMinutes: 0, MaxDistanceKm: 10, AverageSpeedKmh: 30}},
		{"negative cycle", CycleConfig{CycleDurationMinutes: -5, MaxDistanceKm: 10, AverageSpeedKmh: 30}},
		{"NaN cycle", CycleConfig{CycleDurationMinutes: math.NaN(), MaxDistanceKm: 10, AverageSpeedKmh: 30}},
		{"negative distance", CycleConfig{CycleDurationMinutes: 20, MaxDistanceKm: -1, AverageSpeedKmh: 30}},
		{"zero speed", CycleConfig{CycleDurationMinutes: 20, MaxDistanceKm: 10, AverageSpeedKmh: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeCountdown(time.Now(), tt.cfg)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestComputeCountdown_Properties(t *testing.T) {
	offsets := []int64{0, 1, 59_999, 300_000, 600_000, 777_777, 1_140_000, cycleMs - 1}

	for _, offset := range offsets {
		base, err := ComputeCountdown(atCycleOffset(0, offset), defaultCycle)
		require.NoError(t, err)

		// boundedness
		assert.GreaterOrEqual(t, base.ETAMinutes, 0)
		assert.LessOrEqual(t, base.DistanceKm, defaultCycle.MaxDistanceKm)
		assert.GreaterOrEqual(t, base.DistanceKm, 0.0)

		// periodicity
		for _, k := range []int64{1, 2, 1_000, 1_500_000} {
			shifted, err := ComputeCountdown(atCycleOffset(k, offset), defaultCycle)
			require.NoError(t, err)
			assert.Equal(t, base.ETAMinutes, shifted.ETAMinutes, "offset=%d k=%d", offset, k)
			assert.InDelta(t, base.DistanceKm, shifted.DistanceKm, 1e-9)
		}
	}
}

func TestPositionOnRoute(t *testing.T) {
	route := []domain.Point{
		{Lat: -8.0631, Lon: -34.8711},
		{Lat: -8.0900, Lon: -34.8850},
		{Lat: -8.1275, Lon: -34.9020},
	}

	t.Run("half way picks middle point", func(t *testing.T) {
		pos, err := PositionOnRoute(atCycleOffset(99, 600_000), route, 20)
		require.NoError(t, err)

		assert.Equal(t, 1, pos.Index)
		assert.Equal(t, route[1], pos.Point)
		assert.InDelta(t, 0.5, pos.Progress, 1e-12)
	})

	t.Run("cycle start picks first point", func(t *testing.T) {
		pos, err := PositionOnRoute(atCycleOffset(5, 0), route, 20)
		require.NoError(t, err)
		assert.Equal(t, 0, pos.Index)
		assert.Equal(t, route[0], pos.Point)
	})

	t.Run("last point is never reached by floor", func(t *testing.T) {
		pos, err := PositionOnRoute(atCycleOffset(5, cycleMs-1), route, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, pos.Index)
	})

	t.Run("single point route is constant", func(t *testing.T) {
		single := route[:1]
		for _, offset := range []int64{0, 400_000, cycleMs - 1} {
			pos, err := PositionOnRoute(atCycleOffset(3, offset), single, 20)
			require.NoError(t, err)
			assert.Equal(t, single[0], pos.Point)
			assert.Equal(t, 0, pos.Index)
		}
	})

	t.Run("same instant is deterministic", func(t *testing.T) {
		now := atCycleOffset(42, 123_456)
		a, err := PositionOnRoute(now, route, 20)
		require.NoError(t, err)
		b, err := PositionOnRoute(now, route, 20)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("returned point always belongs to the route", func(t *testing.T) {
		long := make([]domain.Point, 17)
		for i := range long {
			long[i] = domain.Point{Lat: -8 - float64(i)*0.01, Lon: -34.9 + float64(i)*0.005}
		}

		for offset := int64(0); offset < cycleMs; offset += 7_919 {
			pos, err := PositionOnRoute(atCycleOffset(11, offset), long, 20)
			require.NoError(t, err)
			require.GreaterOrEqual(t, pos.Index, 0)
			require.Less(t, pos.Index, len(long))
			assert.Equal(t, long[pos.Index], pos.Point)
		}
	})

	t.Run("empty route fails", func(t *testing.T) {
		_, err := PositionOnRoute(time.Now(), nil, 20)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidRoute))
	})

	t.Run("non positive cycle fails", func(t *testing.T) {
		_, err := PositionOnRoute(time.Now(), route, 0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))
	})
}

func TestCycleProgress(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"cycle start", atCycleOffset(1_450_000, 0), 0},
		{"quarter", atCycleOffset(1_450_000, cycleMs/4), 0.25},
		{"last millisecond", atCycleOffset(1_450_000, cycleMs-1), float64(cycleMs-1) / float64(cycleMs)},
		{"before epoch wraps forward", time.UnixMilli(-cycleMs / 4), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CycleProgress(tt.now, 20)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 1.0)
		})
	}

	_, err := CycleProgress(time.Now(), 0)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))
}
