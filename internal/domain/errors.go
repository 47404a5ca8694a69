package domain

import "errors"

// Sentinel errors for the closed set of business failures the user service
// can report. Handlers match on these with errors.Is.
var (
	// ErrUserNotFound is returned when no account exists for an email or id
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOAuthRequired is returned for accounts without a local password
	ErrOAuthRequired = errors.New("oauth sign-in required")

	// ErrAccountDisabled is returned for deactivated accounts
	ErrAccountDisabled = errors.New("account disabled")

	// ErrEmailExists is returned when registering an already-taken email
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidToken is returned when a bearer token fails verification
	ErrInvalidToken = errors.New("invalid token")
)

// ErrorCode represents the business error codes surfaced by the API
type ErrorCode string

const (
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeOAuthRequired      ErrorCode = "OAUTH_REQUIRED"
	CodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"
	CodeEmailExists        ErrorCode = "EMAIL_EXISTS"
)

// AuthError is a tagged business failure from the user service. Kind is one
// of the sentinel errors above so errors.Is keeps working; Message is a
// human-readable description safe to show to the client.
type AuthError struct {
	Kind    error
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Kind }

// NewAuthError wraps a sentinel kind with a client-facing message
func NewAuthError(kind error, message string) *AuthError {
	return &AuthError{Kind: kind, Message: message}
}

// MapErrorToCode converts service errors to API error codes
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrOAuthRequired):
		return CodeOAuthRequired
	case errors.Is(err, ErrAccountDisabled):
		return CodeAccountDisabled
	case errors.Is(err, ErrEmailExists):
		return CodeEmailExists
	default:
		return ""
	}
}
