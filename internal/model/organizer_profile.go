package model

import "time"

// OrganizerProfile is the public-facing profile an organizer attaches to
// their user record. One profile per user, keyed by the user id.
type OrganizerProfile struct {
	UserID         int       `json:"user_id" db:"user_id"`
	DisplayName    *string   `json:"display_name,omitempty" db:"display_name"`
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Bio            *string   `json:"bio,omitempty" db:"bio"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateOrganizerProfileParams struct {
	DisplayName    *string
	ProfilePicture *string
	Phone          *string
	Bio            *string
}
