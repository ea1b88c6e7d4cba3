package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/conecta-coleta/internal/domain"
	redisRepo "github.com/conecta-coleta/internal/repository/redis"
)

const testStream = "test:stream:truck:position"

// getTestRedisClient starts an in-memory Redis and returns a client for it
func getTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client
}

func testEvent() *domain.TruckPositionEvent {
	return &domain.TruckPositionEvent{
		EventID:    uuid.New(),
		TruckID:    "truck-01",
		RouteID:    "recife-centro",
		Lat:        -8.0785,
		Lon:        -34.8870,
		PointIndex: 3,
		ETAMinutes: 12,
		DistanceKm: 6,
		ComputedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	err := repo.CreateConsumerGroup(ctx, testStream, "test-group")
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	err = repo.CreateConsumerGroup(ctx, testStream, "test-group")
	assert.NoError(t, err)
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	event := testEvent()
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	dataStr, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.TruckPositionEvent
	require.NoError(t, json.Unmarshal([]byte(dataStr), &received))
	assert.Equal(t, event.EventID, received.EventID)
	assert.Equal(t, "recife-centro", received.RouteID)
	assert.Equal(t, 12, received.ETAMinutes)
	assert.True(t, event.ComputedAt.Equal(received.ComputedAt))
}

func TestStreamRepository_PublishToStream_Unmarshalable(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())

	err := repo.PublishToStream(context.Background(), testStream, map[string]interface{}{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestStreamRepository_ConsumeStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-consumer-group"))

	event := testEvent()
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	msgChan, err := repo.ConsumeStream(ctx, testStream, "test-consumer-group", "test-consumer")
	require.NoError(t, err)

	select {
	case msg := <-msgChan:
		assert.NotEmpty(t, msg.ID)

		var received domain.TruckPositionEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Data), &received))
		assert.Equal(t, event.EventID, received.EventID)
		assert.Equal(t, "truck-01", received.TruckID)
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for message")
	}
}

func TestStreamRepository_AckMessage(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	group := "test-ack-group"

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, group))
	require.NoError(t, repo.PublishToStream(ctx, testStream, testEvent()))

	messages, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: "test-consumer",
		Streams:  []string{testStream, ">"},
		Count:    1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	messageID := messages[0].Messages[0].ID

	pending, err := client.XPending(ctx, testStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Count)

	require.NoError(t, repo.AckMessage(ctx, testStream, group, messageID))

	pending, err = client.XPending(ctx, testStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_ConsumeStream_ContextCancellation(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-cancel-group"))

	msgChan, err := repo.ConsumeStream(ctx, testStream, "test-cancel-group", "test-consumer")
	require.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	timeout := time.After(4 * time.Second)
	for {
		select {
		case _, ok := <-msgChan:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("Channel not closed after context cancellation")
		}
	}
}

func TestStreamRepository_ClaimPending(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	group := "test-claim-group"

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, group))
	event := testEvent()
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))
	require.NoError(t, repo.PublishToStream(ctx, testStream, testEvent()))

	// A consumer reads both messages and dies without acking
	_, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: "crashed-consumer",
		Streams:  []string{testStream, ">"},
		Count:    10,
	}).Result()
	require.NoError(t, err)

	claimed, err := repo.ClaimPending(ctx, testStream, group, "new-consumer", 0)
	require.NoError(t, err)
	require.Len(t, claimed, 2)

	var received domain.TruckPositionEvent
	require.NoError(t, json.Unmarshal([]byte(claimed[0].Data), &received))
	assert.Equal(t, event.EventID, received.EventID)

	// Ownership moved, the messages are still pending until acked
	pending, err := client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: testStream,
		Group:  group,
		Start:  "-",
		End:    "+",
		Count:  10,
	}).Result()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, p := range pending {
		assert.Equal(t, "new-consumer", p.Consumer)
	}

	for _, msg := range claimed {
		require.NoError(t, repo.AckMessage(ctx, testStream, group, msg.ID))
	}
	claimed, err = repo.ClaimPending(ctx, testStream, group, "new-consumer", 0)
	require.NoError(t, err)
	assert.Empty(t, claimed)
}
