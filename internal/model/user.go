package model

import "time"

type User struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Password  string     `json:"-" db:"password"`
	Email     string     `json:"email" db:"email"`
	Role      *string    `json:"role,omitempty" db:"role"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type UpdateUserParams struct {
	Username *string
	Password *string
	Email    *string
	Role     *string
}
