package queue

import (
	"context"
	"testing"
	"time"

	"event-experience/internal/model"
	"event-experience/internal/queue"
	"event-experience/test/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStreamCheckinQueue_PublishAndSubscribe(t *testing.T) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// fresh stream so earlier runs do not leak into this one
	require.NoError(t, rdb.Del(ctx, queue.StreamKey).Err())

	q, err := queue.NewRedisStreamCheckinQueue(rdb, uuid.New().String(), nil)
	require.NoError(t, err)

	msgs, err := q.SubscribeCheckIns(ctx)
	require.NoError(t, err)

	event := &model.CheckInEvent{TicketID: 42, EventID: 3, AttendeeID: 7, CheckedInAt: time.Now().UTC()}
	require.NoError(t, q.PublishCheckIn(ctx, event))

	select {
	case msg := <-msgs:
		assert.Equal(t, 42, msg.Data.TicketID)
		assert.Equal(t, 3, msg.Data.EventID)
		assert.Equal(t, 7, msg.Data.AttendeeID)
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for stream delivery")
	}
}

func TestRedisStreamCheckinQueue_NackedMessageIsReclaimed(t *testing.T) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, rdb.Del(ctx, queue.StreamKey).Err())

	cfg := &queue.RedisStreamCheckinQueueConfig{
		ClaimMinIdleTime:   500 * time.Millisecond,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 200 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamCheckinQueue(rdb, uuid.New().String(), cfg)
	require.NoError(t, err)

	msgs, err := q.SubscribeCheckIns(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishCheckIn(ctx, &model.CheckInEvent{TicketID: 42, EventID: 3}))

	select {
	case msg := <-msgs:
		msg.Nack(true)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first delivery")
	}

	// the unacked message sits in the PEL until the auto-claim loop picks it up
	select {
	case msg := <-msgs:
		assert.Equal(t, 42, msg.Data.TicketID)
		msg.Ack()
	case <-time.After(10 * time.Second):
		t.Fatal("nacked message was not reclaimed")
	}
}
