package worker

import (
	"context"

	"event-experience/internal/cache"
	"event-experience/internal/queue"
	"event-experience/internal/repository"
	"event-experience/pkg/logger"

	"go.uber.org/zap"
)

// AttendanceWorker consumes the check-in feed and refreshes the cached
// attendance counters for the affected event.
type AttendanceWorker interface {
	Start(ctx context.Context) error
}

type AttendanceWorkerImpl struct {
	tickets repository.TicketRepository
	cache   cache.AttendanceCache
	queue   queue.CheckinQueue
}

func NewAttendanceWorker(tickets repository.TicketRepository, attendanceCache cache.AttendanceCache, checkinQueue queue.CheckinQueue) AttendanceWorker {
	return &AttendanceWorkerImpl{
		tickets: tickets,
		cache:   attendanceCache,
		queue:   checkinQueue,
	}
}

func (w *AttendanceWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeCheckIns(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for msg := range msgs {
			if err := w.refresh(ctx, msg.Data.EventID); err != nil {
				// store failure: leave the message for a delayed retry
				log.Warn("attendance refresh failed", zap.Int("event_id", msg.Data.EventID), zap.Error(err))
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}

func (w *AttendanceWorkerImpl) refresh(ctx context.Context, eventID int) error {
	attendance, err := w.tickets.CountByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	return w.cache.Set(ctx, eventID, attendance)
}
