package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-experience/internal/model"
	apperrors "event-experience/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ticketColumns = `id, attendee_id, event_id, qr_code, status, created_at, updated_at`

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	List(ctx context.Context) ([]*model.Ticket, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error)
	ListByAttendeeID(ctx context.Context, attendeeID int) ([]*model.Ticket, error)
	FindByID(ctx context.Context, id int) (*model.Ticket, error)
	Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error)
	Delete(ctx context.Context, id int) (bool, error)

	// CheckIn performs the valid -> checked-in transition as one conditional
	// update so two concurrent calls cannot both succeed.
	CheckIn(ctx context.Context, id int) (*model.Ticket, error)
	CountByEventID(ctx context.Context, eventID int) (*model.EventAttendance, error)
	ListParticipants(ctx context.Context, eventID int) ([]*model.Participant, error)
	ListWithEventDetails(ctx context.Context, attendeeID int) ([]*model.TicketWithEvent, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

func scanTicket(row pgx.Row, ticket *model.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.AttendeeID,
		&ticket.EventID,
		&ticket.QRCode,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := fmt.Sprintf(`
		INSERT INTO tickets (attendee_id, event_id, qr_code, status)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, ticketColumns)

	err := scanTicket(r.pool.QueryRow(ctx, query,
		ticket.AttendeeID, ticket.EventID, ticket.QRCode, ticket.Status,
	), ticket)

	if err != nil {
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) List(ctx context.Context) ([]*model.Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`, ticketColumns)

	return r.queryTickets(ctx, query)
}

func (r *TicketRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets
		WHERE event_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`, ticketColumns)

	return r.queryTickets(ctx, query, eventID)
}

func (r *TicketRepositoryImpl) ListByAttendeeID(ctx context.Context, attendeeID int) ([]*model.Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets
		WHERE attendee_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`, ticketColumns)

	return r.queryTickets(ctx, query, attendeeID)
}

func (r *TicketRepositoryImpl) queryTickets(ctx context.Context, query string, args ...interface{}) ([]*model.Ticket, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		var ticket model.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets
		WHERE id = $1 AND deleted_at IS NULL
	`, ticketColumns)

	var ticket model.Ticket
	err := scanTicket(r.pool.QueryRow(ctx, query, id), &ticket)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.AttendeeID != nil {
		sets = append(sets, fmt.Sprintf("attendee_id = $%d", argPos))
		args = append(args, *params.AttendeeID)
		argPos++
	}

	if params.EventID != nil {
		sets = append(sets, fmt.Sprintf("event_id = $%d", argPos))
		args = append(args, *params.EventID)
		argPos++
	}

	if params.QRCode != nil {
		sets = append(sets, fmt.Sprintf("qr_code = $%d", argPos))
		args = append(args, *params.QRCode)
		argPos++
	}

	if params.Status != nil {
		if !params.Status.IsValid() {
			return nil, apperrors.ErrInvalidInput
		}
		sets = append(sets, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *params.Status)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tickets
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, ticketColumns)

	var ticket model.Ticket
	err := scanTicket(r.pool.QueryRow(ctx, query, args...), &ticket)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE tickets
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`

	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, id)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *TicketRepositoryImpl) CheckIn(ctx context.Context, id int) (*model.Ticket, error) {
	query := fmt.Sprintf(`
		UPDATE tickets
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4 AND deleted_at IS NULL
		RETURNING %s
	`, ticketColumns)

	var ticket model.Ticket
	err := scanTicket(r.pool.QueryRow(ctx, query,
		model.TicketStatusCheckedIn, time.Now().UTC(), id, model.TicketStatusValid,
	), &ticket)

	if err == nil {
		return &ticket, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	// Zero rows: either the ticket is gone or its status blocks the
	// transition. Re-read to tell the caller which.
	current, findErr := r.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr
	}
	if current.Status == model.TicketStatusCheckedIn {
		return nil, apperrors.ErrTicketAlreadyCheckedIn
	}
	return nil, &apperrors.InvalidTicketStatusError{Status: string(current.Status)}
}

func (r *TicketRepositoryImpl) CountByEventID(ctx context.Context, eventID int) (*model.EventAttendance, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = $1)
		FROM tickets
		WHERE event_id = $2 AND deleted_at IS NULL
	`

	var attendance model.EventAttendance
	err := r.pool.QueryRow(ctx, query, model.TicketStatusCheckedIn, eventID).Scan(
		&attendance.Registered,
		&attendance.CheckedIn,
	)
	if err != nil {
		return nil, err
	}

	return &attendance, nil
}

func (r *TicketRepositoryImpl) ListParticipants(ctx context.Context, eventID int) ([]*model.Participant, error) {
	// INNER JOIN drops tickets whose attendee row no longer resolves.
	query := `
		SELECT u.username, t.id, t.status
		FROM tickets t
		JOIN users u ON u.id = t.attendee_id AND u.deleted_at IS NULL
		WHERE t.event_id = $1 AND t.deleted_at IS NULL
		ORDER BY t.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*model.Participant, 0)
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.Name, &p.TicketID, &p.Status); err != nil {
			return nil, err
		}
		participants = append(participants, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *TicketRepositoryImpl) ListWithEventDetails(ctx context.Context, attendeeID int) ([]*model.TicketWithEvent, error) {
	query := `
		SELECT t.id, t.status, t.qr_code,
			e.id, e.title, e.location, e.start_date, e.end_date
		FROM tickets t
		JOIN events e ON e.id = t.event_id AND e.deleted_at IS NULL
		WHERE t.attendee_id = $1 AND t.deleted_at IS NULL
		ORDER BY t.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, attendeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]*model.TicketWithEvent, 0)
	for rows.Next() {
		var d model.TicketWithEvent
		err := rows.Scan(
			&d.TicketID,
			&d.Status,
			&d.QRCode,
			&d.EventID,
			&d.EventTitle,
			&d.EventLocation,
			&d.StartDate,
			&d.EndDate,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
