package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserDocument is the identity document of a user. Each user has at most one.
type UserDocument struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	NationalCode   string    `db:"national_code" json:"national_code"`
	PassportNumber string    `db:"passport_number" json:"passport_number"`
	FileKey        string    `db:"file_key" json:"-"`
	FileURL        string    `db:"file_url" json:"file_url"`
	ContentType    string    `db:"content_type" json:"content_type"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
