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

const eventColumns = `id, title, description, start_date, end_date, category,
		capacity, price, link, organizer_id, seating, status, rating, location,
		created_at, updated_at`

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	ListByOrganizerID(ctx context.Context, organizerID int) ([]*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func scanEvent(row pgx.Row, event *model.Event) error {
	return row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartDate,
		&event.EndDate,
		&event.Category,
		&event.Capacity,
		&event.Price,
		&event.Link,
		&event.OrganizerID,
		&event.Seating,
		&event.Status,
		&event.Rating,
		&event.Location,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (
			title, description, start_date, end_date, category,
			capacity, price, link, organizer_id, seating, status, rating, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s
	`, eventColumns)

	if event.Status == "" {
		event.Status = "active"
	}

	err := scanEvent(r.pool.QueryRow(ctx, query,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Category, event.Capacity, event.Price, event.Link,
		event.OrganizerID, event.Seating, event.Status, event.Rating, event.Location,
	), event)

	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`, eventColumns)

	return r.queryEvents(ctx, query)
}

func (r *EventRepositoryImpl) ListByOrganizerID(ctx context.Context, organizerID int) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE organizer_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`, eventColumns)

	return r.queryEvents(ctx, query, organizerID)
}

func (r *EventRepositoryImpl) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*model.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		if err := scanEvent(rows, &event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1 AND deleted_at IS NULL
	`, eventColumns)

	var event model.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, id), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		addSet("title", *params.Title)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.StartDate != nil {
		addSet("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		addSet("end_date", *params.EndDate)
	}
	if params.Category != nil {
		addSet("category", *params.Category)
	}
	if params.Capacity != nil {
		addSet("capacity", *params.Capacity)
	}
	if params.Price != nil {
		addSet("price", *params.Price)
	}
	if params.Link != nil {
		addSet("link", *params.Link)
	}
	if params.Seating != nil {
		addSet("seating", *params.Seating)
	}
	if params.Status != nil {
		addSet("status", *params.Status)
	}
	if params.Rating != nil {
		addSet("rating", *params.Rating)
	}
	if params.Location != nil {
		addSet("location", *params.Location)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	addSet("updated_at", time.Now().UTC())

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	var event model.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, args...), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE events
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
