package domain

import (
	"strconv"
	"time"
)

// OtpCode is a one-time code sent to a phone number during registration.
// Several rows may exist for one phone number; the newest is the active one.
type OtpCode struct {
	ID          int64     `db:"id"`
	PhoneNumber string    `db:"phone_number"`
	Code        int       `db:"code"`
	CreatedAt   time.Time `db:"created_at"`
}

func (o *OtpCode) Matches(code string) bool {
	return strconv.Itoa(o.Code) == code
}
