// Package error defines domain-specific errors for the Salon POS backend.
package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyRegistered is returned when registering with a taken email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when the password does not meet the minimum length.
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrMissingToken is returned when no bearer token is supplied.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when the bearer token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrRateLimited is returned when too many login attempts were made.
	ErrRateLimited = errors.New("too many attempts")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmailAlreadyRegistered AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidCredentials     AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword           AuthErrorCode = "AUTH-010003"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020002"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
