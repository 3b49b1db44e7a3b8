package service

import (
	"context"
	"errors"

	"event-experience/internal/model"
	"event-experience/internal/queue"
	"event-experience/internal/repository"
	"event-experience/monitoring"
	apperrors "event-experience/pkg/app_errors"
	"event-experience/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnknownAttendeeName is returned when a checked-in ticket references a user
// row that no longer resolves.
const UnknownAttendeeName = "Unknown"

type TicketService interface {
	List(ctx context.Context) ([]*model.Ticket, error)
	GetByID(ctx context.Context, id int) (*model.Ticket, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error)
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error)
	Delete(ctx context.Context, id int) (bool, error)

	// ValidateTicket performs the one-time valid -> checked-in transition and
	// enriches the result with the attendee name. A second call on the same
	// ticket fails with ErrTicketAlreadyCheckedIn; that is the contract, not
	// an idempotent no-op.
	ValidateTicket(ctx context.Context, id int) (*model.CheckInResult, error)

	// TicketsWithEventDetails is a read-only aggregate view: a store failure
	// degrades to an empty result instead of an error.
	TicketsWithEventDetails(ctx context.Context, attendeeID int) ([]*model.TicketWithEvent, error)
}

type TicketServiceImpl struct {
	repo     repository.TicketRepository
	userRepo repository.UserRepository
	queue    queue.CheckinQueue
}

func NewTicketService(repo repository.TicketRepository, userRepo repository.UserRepository, checkinQueue queue.CheckinQueue) TicketService {
	return &TicketServiceImpl{
		repo:     repo,
		userRepo: userRepo,
		queue:    checkinQueue,
	}
}

func (s *TicketServiceImpl) List(ctx context.Context) ([]*model.Ticket, error) {
	return s.repo.List(ctx)
}

func (s *TicketServiceImpl) GetByID(ctx context.Context, id int) (*model.Ticket, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TicketServiceImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error) {
	return s.repo.ListByEventID(ctx, eventID)
}

func (s *TicketServiceImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if ticket.AttendeeID == 0 || ticket.EventID == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	if ticket.Status == "" {
		ticket.Status = model.TicketStatusValid
	}
	if !ticket.Status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	// the QR payload is an opaque string; rendering it is someone else's job
	if ticket.QRCode == "" {
		ticket.QRCode = uuid.New().String()
	}

	return s.repo.Create(ctx, ticket)
}

func (s *TicketServiceImpl) Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *TicketServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *TicketServiceImpl) ValidateTicket(ctx context.Context, id int) (*model.CheckInResult, error) {
	ticket, err := s.repo.CheckIn(ctx, id)
	if err != nil {
		monitoring.RecordCheckIn(checkInResultLabel(err))
		return nil, err
	}
	monitoring.RecordCheckIn("success")

	log := logger.WithComponent("service").With(zap.Int("ticket_id", ticket.ID))

	attendeeName := UnknownAttendeeName
	attendee, err := s.userRepo.FindByID(ctx, ticket.AttendeeID)
	switch {
	case err == nil:
		attendeeName = attendee.Username
	case errors.Is(err, apperrors.ErrUserNotFound):
		// dangling attendee reference is tolerated; the check-in stands
	default:
		log.Warn("attendee lookup failed after check-in", zap.Error(err))
	}

	// best-effort: the counters catch up on the next recompute if this fails
	if err := s.queue.PublishCheckIn(ctx, &model.CheckInEvent{
		TicketID:    ticket.ID,
		EventID:     ticket.EventID,
		AttendeeID:  ticket.AttendeeID,
		CheckedInAt: ticket.UpdatedAt,
	}); err != nil {
		log.Warn("publish check-in event failed", zap.Error(err))
	}

	return &model.CheckInResult{
		Ticket:       ticket,
		AttendeeName: attendeeName,
	}, nil
}

func checkInResultLabel(err error) string {
	var statusErr *apperrors.InvalidTicketStatusError
	switch {
	case errors.Is(err, apperrors.ErrTicketNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrTicketAlreadyCheckedIn):
		return "already_checked_in"
	case errors.As(err, &statusErr):
		return "invalid_status"
	default:
		return "error"
	}
}

func (s *TicketServiceImpl) TicketsWithEventDetails(ctx context.Context, attendeeID int) ([]*model.TicketWithEvent, error) {
	details, err := s.repo.ListWithEventDetails(ctx, attendeeID)
	if err != nil {
		logger.WithComponent("service").Warn("tickets-with-details degraded to empty result",
			zap.Int("attendee_id", attendeeID), zap.Error(err))
		return []*model.TicketWithEvent{}, nil
	}
	return details, nil
}
