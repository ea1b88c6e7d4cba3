// Package truck содержит воркеры трекинга мусоровоза: публикацию позиции
// в Redis Stream и сохранение последней позиции в кеш.
package truck

import (
	"context"
	"fmt"
	"time"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/metrics"
	"github.com/conecta-coleta/internal/worker"
	"go.uber.org/zap"
)

// StatusProvider считает снимок симуляции; реализуется usecase.TruckUseCase
type StatusProvider interface {
	GetStatus(ctx context.Context, routeID string) (*domain.TruckStatus, error)
}

// TrackerWorker по таймеру публикует позицию мусоровоза в стрим.
// Таймер принадлежит воркеру, ядро симуляции остаётся чистой функцией.
type TrackerWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	status     StatusProvider
	truckID    string
	routeID    string
	stream     string
	interval   time.Duration
}

// NewTrackerWorker создает новый TrackerWorker
func NewTrackerWorker(
	streamRepo repository.StreamRepository,
	status StatusProvider,
	truckID, routeID, stream string,
	interval time.Duration,
	logger *zap.Logger,
) *TrackerWorker {
	if stream == "" {
		stream = domain.StreamTruckPosition
	}
	return &TrackerWorker{
		BaseWorker: worker.NewBaseWorker("truck-tracker", logger),
		streamRepo: streamRepo,
		status:     status,
		truckID:    truckID,
		routeID:    routeID,
		stream:     stream,
		interval:   interval,
	}
}

// Start публикует первое событие сразу, затем на каждом тике
func (w *TrackerWorker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return fmt.Errorf("tracker interval must be > 0, got %v", w.interval)
	}

	logger := w.Logger()
	logger.Info("Starting TrackerWorker",
		zap.String("truck_id", w.truckID),
		zap.String("route_id", w.routeID),
		zap.String("stream", w.stream),
		zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

// tick - одна публикация; ошибки логируются, цикл продолжается
func (w *TrackerWorker) tick(ctx context.Context) {
	if err := w.PublishOnce(ctx); err != nil {
		metrics.TrackerEventsTotal.WithLabelValues("error").Inc()
		w.Logger().Error("Failed to publish truck position", zap.Error(err))
		return
	}
	metrics.TrackerEventsTotal.WithLabelValues("published").Inc()
}

// PublishOnce считает статус и публикует одно событие
func (w *TrackerWorker) PublishOnce(ctx context.Context) error {
	status, err := w.status.GetStatus(ctx, w.routeID)
	if err != nil {
		return fmt.Errorf("failed to compute truck status: %w", err)
	}

	event := domain.NewTruckPositionEvent(w.truckID, status)
	if err := w.streamRepo.PublishToStream(ctx, w.stream, event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	w.Logger().Debug("Truck position published",
		zap.String("event_id", event.EventID.String()),
		zap.Int("point_index", event.PointIndex),
		zap.Int("eta_minutes", event.ETAMinutes))

	return nil
}
