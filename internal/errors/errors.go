package errors

import (
	"errors"
	"net/http"
)

// Error kinds. Every domain error wraps exactly one of these.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidOperation = errors.New("invalid operation")
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = New(ErrNotFound, "USER_NOT_FOUND", "User not found")
	// ErrSportNotFound is returned when a referenced sport does not exist.
	ErrSportNotFound = New(ErrNotFound, "SPORT_NOT_FOUND", "Sport not found")
	// ErrFacilityNotFound is returned when a facility is not found.
	ErrFacilityNotFound = New(ErrNotFound, "FACILITY_NOT_FOUND", "Facility not found")
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = New(ErrNotFound, "ACTIVITY_NOT_FOUND", "Activity not found")
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = New(ErrNotFound, "BOOKING_NOT_FOUND", "Booking not found")

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = New(ErrConflict, "EMAIL_TAKEN", "Email already registered")
	// ErrUsernameTaken is returned when registering with a username already in use.
	ErrUsernameTaken = New(ErrConflict, "USERNAME_TAKEN", "Username already registered")
	// ErrSportExists is returned when a sport name is already used.
	ErrSportExists = New(ErrConflict, "SPORT_EXISTS", "Sport already exists")
	// ErrMatchExists is returned when the user already has a match for the activity.
	ErrMatchExists = New(ErrConflict, "MATCH_EXISTS", "Match already exists")
	// ErrFacilityInUse is returned when deleting a facility that bookings still reference.
	ErrFacilityInUse = New(ErrConflict, "FACILITY_IN_USE", "Facility has bookings")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = New(ErrUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	// ErrInvalidToken is returned for missing, malformed, expired or orphaned tokens.
	ErrInvalidToken = New(ErrUnauthorized, "INVALID_TOKEN", "Could not validate credentials")

	// ErrAdminOnly is returned when a non-admin calls an admin operation.
	ErrAdminOnly = New(ErrForbidden, "ADMIN_ONLY", "Admins only")

	// ErrSelfMatch is returned when a user tries to join their own activity.
	ErrSelfMatch = New(ErrInvalidOperation, "SELF_MATCH", "Cannot match with your own activity")
	// ErrInvalidStatus is returned for unknown match or booking status values.
	ErrInvalidStatus = New(ErrInvalidOperation, "INVALID_STATUS", "Invalid status")
)

// Error is a domain error of a given kind with a stable machine code.
type Error struct {
	kind    error
	Code    string
	Message string
}

// New creates a domain error of the given kind.
func New(kind error, code, message string) *Error {
	return &Error{kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the kind so callers can use errors.Is(err, ErrNotFound).
func (e *Error) Unwrap() error {
	return e.kind
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Detail: e.Message,
		Code:   e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, domainErr.Message, domainErr.Code)
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidOperation):
		return NewHTTPError(http.StatusBadRequest, domainErr.Message, domainErr.Code)
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, domainErr.Message, domainErr.Code)
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, domainErr.Message, domainErr.Code)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
