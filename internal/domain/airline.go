package domain

import (
	"time"

	"github.com/google/uuid"
)

// Airline is a partner whose availability endpoint takes part in flight search.
type Airline struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Symbol   string    `db:"symbol" json:"symbol"`
	Name     string    `db:"name" json:"name"`
	LogoURL  string    `db:"logo_url" json:"logo_url"`
	Username string    `db:"username" json:"-"`
	Password string    `db:"password" json:"-"`

	CreatedAt time.Time  `db:"created_at" json:"-"`
	UpdatedAt time.Time  `db:"updated_at" json:"-"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}
