package domain

import (
	"time"
)

// PendingRegistration holds validated sign-up data between OTP issuance and verification.
// Password is already hashed.
type PendingRegistration struct {
	PhoneNumber  string    `json:"phone_number"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
