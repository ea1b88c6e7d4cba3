package truck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/worker"
	"go.uber.org/zap"
)

// LastPositionGroup - consumer group воркера последней позиции
const LastPositionGroup = "truck-last-position"

// DefaultClaimMinIdle - через сколько неподтверждённое сообщение забирается повторно
const DefaultClaimMinIdle = 30 * time.Second

// LastPositionWorker читает стрим позиций и хранит в кеше последнее событие каждого мусоровоза
type LastPositionWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	stream       string
	group        string
	consumerName string
	ttl          time.Duration
	claimMinIdle time.Duration

	// lastArriving - для лога смены состояния "прибывает"
	lastArriving map[string]bool
}

// NewLastPositionWorker создает новый LastPositionWorker
func NewLastPositionWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	stream string,
	ttl time.Duration,
	logger *zap.Logger,
) *LastPositionWorker {
	if stream == "" {
		stream = domain.StreamTruckPosition
	}
	hostname, _ := os.Hostname()

	return &LastPositionWorker{
		BaseWorker:   worker.NewBaseWorker("truck-last-position", logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		stream:       stream,
		group:        LastPositionGroup,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		ttl:          ttl,
		claimMinIdle: DefaultClaimMinIdle,
		lastArriving: make(map[string]bool),
	}
}

// WithClaimMinIdle меняет порог повторной обработки неподтверждённых сообщений
func (w *LastPositionWorker) WithClaimMinIdle(d time.Duration) *LastPositionWorker {
	w.claimMinIdle = d
	return w
}

// Start читает стрим до остановки воркера или отмены контекста
func (w *LastPositionWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting LastPositionWorker",
		zap.String("stream", w.stream),
		zap.String("consumer_group", w.group),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.stream, w.group); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// сообщения, оставшиеся в PEL после сбоя записи в кеш или падения другого consumer
	w.reclaim(ctx)

	// отдельный контекст, чтобы Stop() закрыл канал ConsumeStream
	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(consumeCtx, w.stream, w.group, w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	reclaimTicker := time.NewTicker(w.reclaimInterval())
	defer reclaimTicker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		case <-reclaimTicker.C:
			w.reclaim(ctx)
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			w.handle(ctx, msg)
		}
	}
}

// reclaim повторно обрабатывает сообщения группы, висящие без ACK дольше claimMinIdle
func (w *LastPositionWorker) reclaim(ctx context.Context) {
	msgs, err := w.streamRepo.ClaimPending(ctx, w.stream, w.group, w.consumerName, w.claimMinIdle)
	if err != nil {
		w.Logger().Warn("Failed to claim pending messages", zap.Error(err))
		return
	}
	for _, msg := range msgs {
		w.handle(ctx, msg)
	}
}

func (w *LastPositionWorker) reclaimInterval() time.Duration {
	if w.claimMinIdle > 0 {
		return w.claimMinIdle
	}
	return time.Second
}

func (w *LastPositionWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.TruckPositionEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil || event.TruckID == "" {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// ACK битое сообщение, чтобы не застревало
		_ = w.streamRepo.AckMessage(ctx, w.stream, w.group, msg.ID)
		return
	}

	if err := w.cacheRepo.Set(ctx, domain.TruckLastPositionKey(event.TruckID), []byte(msg.Data), w.ttl); err != nil {
		// без ACK сообщение остаётся в PEL и будет забрано reclaim
		logger.Error("Failed to store last position",
			zap.String("truck_id", event.TruckID),
			zap.Error(err))
		return
	}

	if event.Arriving && !w.lastArriving[event.TruckID] {
		logger.Info("Truck is arriving",
			zap.String("truck_id", event.TruckID),
			zap.String("route_id", event.RouteID))
	}
	w.lastArriving[event.TruckID] = event.Arriving

	if err := w.streamRepo.AckMessage(ctx, w.stream, w.group, msg.ID); err != nil {
		logger.Warn("Failed to ack message", zap.String("message_id", msg.ID), zap.Error(err))
	}
}
