package service

import "errors"

var (
	ErrUserAlreadyExist         = errors.New("user already exist")
	ErrUserNotFound             = errors.New("user not found")
	ErrVerificationCodeNotFound = errors.New("verification code not found")

	ErrPhoneNumberTaken = errors.New("phone number already registered")
	ErrUserNameTaken    = errors.New("user name already taken")
	ErrEmailTaken       = errors.New("email already registered")

	ErrNoSuchSession = errors.New("registration session not found or expired")
	ErrCodeMismatch  = errors.New("verification code mismatch")

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrForbidden           = errors.New("forbidden")

	ErrDocumentNotFound = errors.New("document not found")

	ErrInvalidDate = errors.New("invalid departure date")
)
