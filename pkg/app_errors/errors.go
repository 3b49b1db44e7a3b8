package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrEventNotFound            = errors.New("event not found")
	ErrTicketNotFound           = errors.New("ticket not found")
	ErrOrganizationNotFound     = errors.New("organization not found")
	ErrMembershipNotFound       = errors.New("organization member not found")
	ErrOrganizerProfileNotFound = errors.New("organizer profile not found")

	ErrTicketAlreadyCheckedIn = errors.New("ticket already checked in")
	ErrUserAlreadyExists      = errors.New("user already exists")
	ErrProfileAlreadyExists   = errors.New("organizer profile already exists")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternalServerError    = errors.New("internal server error")
)

// InvalidTicketStatusError reports a check-in attempt on a ticket whose status
// is neither "valid" nor "checked-in". The offending status is kept so callers
// can surface it.
type InvalidTicketStatusError struct {
	Status string
}

func (e *InvalidTicketStatusError) Error() string {
	return fmt.Sprintf("invalid ticket status: %s", e.Status)
}
