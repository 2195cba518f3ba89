package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation marks malformed or out-of-range field values. Wrap it via
	// Validation so errors.Is still matches.
	ErrValidation = errors.New("invalid input data")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPlaceNotFound is returned when a place is not found.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrAmenityNotFound is returned when an amenity is not found.
	ErrAmenityNotFound = errors.New("amenity not found")
	// ErrOwnerNotFound is returned when a place references a missing owner.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrUserOrPlaceNotFound is returned when a review references a missing user or place.
	ErrUserOrPlaceNotFound = errors.New("user or place not found")

	// ErrEmailTaken is returned when a user email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAmenityTaken is returned when an amenity name already exists.
	ErrAmenityTaken = errors.New("amenity name already exists")
	// ErrDuplicateReview is returned when a user reviews the same place twice.
	ErrDuplicateReview = errors.New("you have already reviewed this place")

	// ErrForbidden is returned when the acting identity may not perform the operation.
	ErrForbidden = errors.New("unauthorized action")
	// ErrAdminRequired is returned for admin-only operations.
	ErrAdminRequired = errors.New("admin privileges required")
	// ErrSelfReview is returned when a user reviews their own place.
	ErrSelfReview = errors.New("you cannot review your own place")
)

// Validation wraps ErrValidation with a field-specific message.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors following the taxonomy:
// validation 400, not-found 404, conflict 409, forbidden 403.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPlaceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PLACE_NOT_FOUND")
	case errors.Is(err, ErrReviewNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REVIEW_NOT_FOUND")
	case errors.Is(err, ErrAmenityNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "AMENITY_NOT_FOUND")
	case errors.Is(err, ErrOwnerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "OWNER_NOT_FOUND")
	case errors.Is(err, ErrUserOrPlaceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_OR_PLACE_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrAmenityTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "AMENITY_ALREADY_EXISTS")
	case errors.Is(err, ErrDuplicateReview):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_REVIEW")
	case errors.Is(err, ErrSelfReview):
		return NewHTTPError(http.StatusForbidden, err.Error(), "SELF_REVIEW")
	case errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
