package model

import "time"

type Organization struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	Status      *string    `json:"status,omitempty" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type UpdateOrganizationParams struct {
	Title       *string
	Description *string
	Status      *string
}

// OrganizationMember is a pure association row keyed by
// (organization_id, user_id).
type OrganizationMember struct {
	OrganizationID int       `json:"organization_id" db:"organization_id"`
	UserID         int       `json:"user_id" db:"user_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
