package model

import "time"

// TicketStatus is a closed enumeration. The store rejects values outside this
// set; only the check-in path may move a ticket from valid to checked-in.
type TicketStatus string

const (
	TicketStatusValid     TicketStatus = "valid"
	TicketStatusCheckedIn TicketStatus = "checked-in"
	TicketStatusExpired   TicketStatus = "expired"
	TicketStatusUsed      TicketStatus = "used"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusValid, TicketStatusCheckedIn, TicketStatusExpired, TicketStatusUsed:
		return true
	}
	return false
}

// CanCheckIn reports whether the check-in transition is allowed from s.
// checked-in is terminal for that path.
func (s TicketStatus) CanCheckIn() bool {
	return s == TicketStatusValid
}

type Ticket struct {
	ID         int          `json:"id" db:"id"`
	AttendeeID int          `json:"attendee_id" db:"attendee_id"`
	EventID    int          `json:"event_id" db:"event_id"`
	QRCode     string       `json:"qr_code" db:"qr_code"`
	Status     TicketStatus `json:"status" db:"status"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt  *time.Time   `json:"deleted_at,omitempty" db:"deleted_at"`
}

type UpdateTicketParams struct {
	AttendeeID *int
	EventID    *int
	QRCode     *string
	Status     *TicketStatus
}

// CheckInResult is what a successful ticket validation returns: the updated
// ticket plus the attendee display name ("Unknown" when the user row is gone).
type CheckInResult struct {
	Ticket       *Ticket `json:"ticket"`
	AttendeeName string  `json:"attendeeName"`
}

// CheckInEvent is the payload published to the check-in feed after a
// successful validation.
type CheckInEvent struct {
	TicketID    int       `json:"ticket_id"`
	EventID     int       `json:"event_id"`
	AttendeeID  int       `json:"attendee_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

// TicketWithEvent is the denormalized row for the student tickets view.
type TicketWithEvent struct {
	TicketID      int          `json:"ticket_id"`
	Status        TicketStatus `json:"status"`
	QRCode        string       `json:"qr_code"`
	EventID       int          `json:"event_id"`
	EventTitle    string       `json:"event_title"`
	EventLocation *string      `json:"event_location,omitempty"`
	StartDate     *time.Time   `json:"start_date,omitempty"`
	EndDate       *time.Time   `json:"end_date,omitempty"`
}
