package errors

import (
	"errors"
	"net/http"
	"time"
)

// AppError is the error type services return to handlers. Code and Message
// are rendered to the client; Err is only logged.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	RetryAfter time.Duration
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

// WithRetryAfter asks the response writer to send a Retry-After header.
func (e *AppError) WithRetryAfter(d time.Duration) *AppError {
	e.RetryAfter = d

	return e
}

const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeGone             = "GONE"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
	ErrCodeThirdPartyError  = "THIRD_PARTY_ERROR"
	ErrCodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	ErrCodeUnsupportedMedia = "UNSUPPORTED_MEDIA_TYPE"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
)

var statusByCode = map[string]int{
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeForbidden:        http.StatusForbidden,
	ErrCodeGone:             http.StatusGone,
	ErrCodeInternal:         http.StatusInternalServerError,
	ErrCodeDatabaseError:    http.StatusInternalServerError,
	ErrCodeThirdPartyError:  http.StatusBadGateway,
	ErrCodePayloadTooLarge:  http.StatusRequestEntityTooLarge,
	ErrCodeUnsupportedMedia: http.StatusUnsupportedMediaType,
	ErrCodeTooManyRequests:  http.StatusTooManyRequests,
}

// New builds an AppError whose status follows from code. Unknown codes map to 500.
func New(code, message string) *AppError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	return &AppError{Code: code, Message: message, StatusCode: status}
}

func ValidationError(message string) *AppError { return New(ErrCodeValidation, message) }

func BadRequestError(message string) *AppError { return New(ErrCodeBadRequest, message) }

func NotFoundError(message string) *AppError { return New(ErrCodeNotFound, message) }

func UnauthorizedError(message string) *AppError { return New(ErrCodeUnauthorized, message) }

func ForbiddenError(message string) *AppError { return New(ErrCodeForbidden, message) }

// GoneError marks a resource that existed but can no longer be used, e.g. an expired promo code.
func GoneError(message string) *AppError { return New(ErrCodeGone, message) }

func InternalError(message string) *AppError { return New(ErrCodeInternal, message) }

func DatabaseError(message string) *AppError { return New(ErrCodeDatabaseError, message) }

func ThirdPartyError(message string) *AppError { return New(ErrCodeThirdPartyError, message) }

func PayloadTooLargeError(message string) *AppError { return New(ErrCodePayloadTooLarge, message) }

func UnsupportedMediaError(message string) *AppError { return New(ErrCodeUnsupportedMedia, message) }

func TooManyRequestsError(message string) *AppError { return New(ErrCodeTooManyRequests, message) }

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
