package queue

import (
	"context"
	"errors"

	"event-experience/internal/model"
)

// ErrFeedFull reports a publish against a full feed buffer. Publishing is
// best-effort, so callers log and move on; the counters catch up on the next
// recompute.
var ErrFeedFull = errors.New("check-in feed full")

type Delivery struct {
	Data *model.CheckInEvent
	Ack  func()
	Nack func(requeue bool)
}

// CheckinQueue is the feed of completed check-ins. The check-in itself is
// synchronous; the feed only drives read-side maintenance (attendance
// counters), so publishing is best-effort for callers.
type CheckinQueue interface {
	PublishCheckIn(ctx context.Context, event *model.CheckInEvent) error
	SubscribeCheckIns(ctx context.Context) (<-chan Delivery, error)
}

// CheckinQueueImpl is the in-process channel implementation, used in tests
// and single-node deployments.
type CheckinQueueImpl struct {
	ch chan *model.CheckInEvent
}

func NewCheckinQueue(bufferSize int) CheckinQueue {
	return &CheckinQueueImpl{
		ch: make(chan *model.CheckInEvent, bufferSize),
	}
}

func (q *CheckinQueueImpl) PublishCheckIn(ctx context.Context, event *model.CheckInEvent) error {
	select {
	case q.ch <- event:
		return nil
	default:
		return ErrFeedFull
	}
}

func (q *CheckinQueueImpl) SubscribeCheckIns(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: event,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							// best-effort: a full buffer drops the retry
							select {
							case q.ch <- event:
							default:
							}
						}
					},
				}
			}
		}
	}()

	return out, nil
}
