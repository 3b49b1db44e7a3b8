package model

import "time"

type Event struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	StartDate   *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date"`
	Category    *string    `json:"category,omitempty" db:"category"`
	Capacity    *int       `json:"capacity,omitempty" db:"capacity"`
	Price       *float64   `json:"price,omitempty" db:"price"`
	Link        *string    `json:"link,omitempty" db:"link"`
	OrganizerID *int       `json:"organizer_id,omitempty" db:"organizer_id"`
	Seating     *string    `json:"seating,omitempty" db:"seating"`
	Status      string     `json:"status" db:"status"`
	Rating      *float64   `json:"rating,omitempty" db:"rating"`
	Location    *string    `json:"location,omitempty" db:"location"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type UpdateEventParams struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Category    *string
	Capacity    *int
	Price       *float64
	Link        *string
	Seating     *string
	Status      *string
	Rating      *float64
	Location    *string
}

// EventAttendance holds the aggregate counts for one event: every live ticket
// counts as registered, checked-in tickets are counted separately.
type EventAttendance struct {
	Registered int `json:"registered"`
	CheckedIn  int `json:"checked_in"`
}

// Participant is one resolved attendee entry for an event.
type Participant struct {
	Name     string       `json:"name"`
	TicketID int          `json:"ticket_id"`
	Status   TicketStatus `json:"status"`
}
