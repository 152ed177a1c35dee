package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	UserName    string    `db:"user_name" json:"user_name"`
	Email       string    `db:"email" json:"email"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	Password    string    `db:"password" json:"-"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// UserConflicts tells which unique user fields are already taken.
type UserConflicts struct {
	PhoneNumber bool `db:"phone_number"`
	UserName    bool `db:"user_name"`
	Email       bool `db:"email"`
}

func (c UserConflicts) Any() bool {
	return c.PhoneNumber || c.UserName || c.Email
}

type UserProfile struct {
	FirstName string
	LastName  string
	Email     string
}
