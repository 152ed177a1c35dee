package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	UserAlreadyExistsCode          = 1001
	UserAlreadyExistsMessage       = "user already exists"
	UserNotFoundCode               = 1002
	UserNotFoundMessage            = "user not found"
	UserRefreshTokenInvalidCode    = 1003
	UserRefreshTokenInvalidMessage = "user refresh token invalid"
	UserRefreshTokenExpiredCode    = 1004
	UserRefreshTokenExpiredMessage = "user refresh token expired"
	PhoneNumberTakenCode           = 1005
	PhoneNumberTakenMessage        = "phone number already registered"
	UserNameTakenCode              = 1006
	UserNameTakenMessage           = "user name already taken"
	EmailTakenCode                 = 1007
	EmailTakenMessage              = "email already registered"
	InvalidCredentialsCode         = 1008
	InvalidCredentialsMessage      = "invalid user name or password"

	RegistrationSessionNotFoundCode    = 2001
	RegistrationSessionNotFoundMessage = "registration session not found or expired"
	VerificationCodeNotFoundCode       = 2002
	VerificationCodeNotFoundMessage    = "verification code not found"
	VerificationCodeMismatchCode       = 2003
	VerificationCodeMismatchMessage    = "verification code mismatch"

	ForbiddenCode    = 3001
	ForbiddenMessage = "access to this resource is forbidden"

	DocumentNotFoundCode        = 4001
	DocumentNotFoundMessage     = "document not found"
	DocumentFileRequiredCode    = 4002
	DocumentFileRequiredMessage = "document file is required"
	DocumentTooLargeCode        = 4003
	DocumentTooLargeMessage     = "document file is too large"
	DocumentTypeInvalidCode     = 4004
	DocumentTypeInvalidMessage  = "document must be a jpeg, png or pdf file"

	InvalidDepartureDateCode    = 5001
	InvalidDepartureDateMessage = "invalid departure date"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

var errorMessages = map[ErrorCode]ErrorMessage{
	UserAlreadyExistsCode:           UserAlreadyExistsMessage,
	UserNotFoundCode:                UserNotFoundMessage,
	UserRefreshTokenInvalidCode:     UserRefreshTokenInvalidMessage,
	UserRefreshTokenExpiredCode:     UserRefreshTokenExpiredMessage,
	PhoneNumberTakenCode:            PhoneNumberTakenMessage,
	UserNameTakenCode:               UserNameTakenMessage,
	EmailTakenCode:                  EmailTakenMessage,
	InvalidCredentialsCode:          InvalidCredentialsMessage,
	RegistrationSessionNotFoundCode: RegistrationSessionNotFoundMessage,
	VerificationCodeNotFoundCode:    VerificationCodeNotFoundMessage,
	VerificationCodeMismatchCode:    VerificationCodeMismatchMessage,
	ForbiddenCode:                   ForbiddenMessage,
	DocumentNotFoundCode:            DocumentNotFoundMessage,
	DocumentFileRequiredCode:        DocumentFileRequiredMessage,
	DocumentTooLargeCode:            DocumentTooLargeMessage,
	DocumentTypeInvalidCode:         DocumentTypeInvalidMessage,
	InvalidDepartureDateCode:        InvalidDepartureDateMessage,
	ValidationErrorCode:             ValidationErrorMessage,
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	if msg, ok := errorMessages[code]; ok {
		errorStruct.ErrorCode = code
		errorStruct.ErrorMessage = msg
	}

	return errorStruct
}
