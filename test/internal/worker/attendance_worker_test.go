package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheMocks "event-experience/internal/cache/mocks"
	"event-experience/internal/model"
	"event-experience/internal/queue"
	queueMocks "event-experience/internal/queue/mocks"
	repoMocks "event-experience/internal/repository/mocks"
	"event-experience/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceWorker_RefreshesOnCheckIn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticketRepo := repoMocks.NewMockTicketRepository(t)
	attendanceCache := cacheMocks.NewMockAttendanceCache(t)
	q := queue.NewCheckinQueue(10)

	counted := &model.EventAttendance{Registered: 120, CheckedIn: 46}
	refreshed := make(chan struct{}, 1)

	ticketRepo.EXPECT().CountByEventID(ctx, 3).Return(counted, nil).Once()
	attendanceCache.EXPECT().Set(ctx, 3, counted).RunAndReturn(
		func(_ context.Context, _ int, _ *model.EventAttendance) error {
			refreshed <- struct{}{}
			return nil
		}).Once()

	w := worker.NewAttendanceWorker(ticketRepo, attendanceCache, q)
	require.NoError(t, w.Start(ctx))

	require.NoError(t, q.PublishCheckIn(ctx, &model.CheckInEvent{TicketID: 42, EventID: 3, AttendeeID: 7}))

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not refresh the attendance counters")
	}
}

func TestAttendanceWorker_RetriesOnStoreFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticketRepo := repoMocks.NewMockTicketRepository(t)
	attendanceCache := cacheMocks.NewMockAttendanceCache(t)
	q := queue.NewCheckinQueue(10)

	counted := &model.EventAttendance{Registered: 120, CheckedIn: 46}
	refreshed := make(chan struct{}, 1)

	// first pass fails, the nacked message comes back around
	ticketRepo.EXPECT().CountByEventID(ctx, 3).Return(nil, errors.New("db error")).Once()
	ticketRepo.EXPECT().CountByEventID(ctx, 3).Return(counted, nil).Once()
	attendanceCache.EXPECT().Set(ctx, 3, counted).RunAndReturn(
		func(_ context.Context, _ int, _ *model.EventAttendance) error {
			refreshed <- struct{}{}
			return nil
		}).Once()

	w := worker.NewAttendanceWorker(ticketRepo, attendanceCache, q)
	require.NoError(t, w.Start(ctx))

	require.NoError(t, q.PublishCheckIn(ctx, &model.CheckInEvent{TicketID: 42, EventID: 3, AttendeeID: 7}))

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not retry after the store failure")
	}
}

func TestAttendanceWorker_StartFailsWhenSubscribeFails(t *testing.T) {
	ctx := context.Background()

	ticketRepo := repoMocks.NewMockTicketRepository(t)
	attendanceCache := cacheMocks.NewMockAttendanceCache(t)
	checkinQueue := queueMocks.NewMockCheckinQueue(t)

	checkinQueue.EXPECT().SubscribeCheckIns(ctx).Return(nil, errors.New("stream down")).Once()

	w := worker.NewAttendanceWorker(ticketRepo, attendanceCache, checkinQueue)
	err := w.Start(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream down")
	ticketRepo.AssertNotCalled(t, "CountByEventID")
}
