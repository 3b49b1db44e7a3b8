package service

import (
	"context"
	"time"

	"event-experience/internal/cache"
	"event-experience/internal/model"
	"event-experience/internal/repository"
	"event-experience/pkg/logger"

	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	ListByOrganizerID(ctx context.Context, organizerID int) ([]*model.Event, error)
	GetByID(ctx context.Context, id int) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id int) (bool, error)

	// Attendance returns registered/checked-in counts for an existing event,
	// serving from the cache when it can.
	Attendance(ctx context.Context, eventID int) (*model.EventAttendance, error)
	Participants(ctx context.Context, eventID int) ([]*model.Participant, error)
}

type EventServiceImpl struct {
	repo            repository.EventRepository
	ticketRepo      repository.TicketRepository
	attendanceCache cache.AttendanceCache
}

func NewEventService(repo repository.EventRepository, ticketRepo repository.TicketRepository, attendanceCache cache.AttendanceCache) EventService {
	return &EventServiceImpl{
		repo:            repo,
		ticketRepo:      ticketRepo,
		attendanceCache: attendanceCache,
	}
}

// eventDateLayouts are the accepted shapes for date-valued input fields.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseEventDate normalizes ISO-8601 text to a timestamp. Malformed text
// yields nil, which drops the field rather than rejecting the request.
func ParseEventDate(value string) *time.Time {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) ListByOrganizerID(ctx context.Context, organizerID int) ([]*model.Event, error) {
	return s.repo.ListByOrganizerID(ctx, organizerID)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id int) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *EventServiceImpl) Attendance(ctx context.Context, eventID int) (*model.EventAttendance, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	log := logger.WithComponent("service").With(zap.Int("event_id", eventID))

	cached, err := s.attendanceCache.Get(ctx, eventID)
	if err != nil {
		log.Warn("attendance cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	attendance, err := s.ticketRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.attendanceCache.Set(ctx, eventID, attendance); err != nil {
		log.Warn("attendance cache write failed", zap.Error(err))
	}

	return attendance, nil
}

func (s *EventServiceImpl) Participants(ctx context.Context, eventID int) ([]*model.Participant, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.ticketRepo.ListParticipants(ctx, eventID)
}
