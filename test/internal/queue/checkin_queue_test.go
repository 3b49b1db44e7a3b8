package queue

import (
	"context"
	"testing"
	"time"

	"event-experience/internal/model"
	"event-experience/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckinQueue_PublishAndSubscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewCheckinQueue(10)

	msgs, err := q.SubscribeCheckIns(ctx)
	require.NoError(t, err)

	event := &model.CheckInEvent{TicketID: 42, EventID: 3, AttendeeID: 7, CheckedInAt: time.Now().UTC()}
	require.NoError(t, q.PublishCheckIn(ctx, event))

	select {
	case msg := <-msgs:
		assert.Equal(t, 42, msg.Data.TicketID)
		assert.Equal(t, 3, msg.Data.EventID)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestCheckinQueue_PublishFullBuffer(t *testing.T) {
	ctx := context.Background()

	q := queue.NewCheckinQueue(1)

	require.NoError(t, q.PublishCheckIn(ctx, &model.CheckInEvent{TicketID: 1}))

	// no subscriber is draining, so the second publish must fail fast
	// instead of blocking the check-in path
	done := make(chan error, 1)
	go func() {
		done <- q.PublishCheckIn(ctx, &model.CheckInEvent{TicketID: 2})
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, queue.ErrFeedFull)
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full buffer")
	}
}

func TestCheckinQueue_NackRequeues(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewCheckinQueue(10)

	msgs, err := q.SubscribeCheckIns(ctx)
	require.NoError(t, err)

	event := &model.CheckInEvent{TicketID: 42, EventID: 3}
	require.NoError(t, q.PublishCheckIn(ctx, event))

	select {
	case msg := <-msgs:
		msg.Nack(true)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first delivery")
	}

	select {
	case msg := <-msgs:
		assert.Equal(t, 42, msg.Data.TicketID)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("nacked message was not redelivered")
	}
}

func TestCheckinQueue_SubscribeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	q := queue.NewCheckinQueue(10)

	msgs, err := q.SubscribeCheckIns(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-msgs:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscription channel did not close after cancel")
	}
}
