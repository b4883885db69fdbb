package apperror

import "net/http"

// Machine-readable error codes returned in the response envelope. Clients
// branch on these, never on the message text.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDealBreaker        = "DEAL_BREAKER_VIOLATION"
	CodeNoActiveSwipe      = "NO_ACTIVE_SWIPE"
	CodeInvalidOperation   = "INVALID_OPERATION"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeNotFound           = "NOT_FOUND"
	CodeStorageConflict    = "STORAGE_CONFLICT"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeForbidden          = "FORBIDDEN"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInternal           = "INTERNAL"
)

type AppError struct {
	Status    int         `json:"status"`
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Retryable bool        `json:"retryable"`
	Err       error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, CodeValidation, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, CodeForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message, nil)
}

func Conflict(code, message string) *AppError {
	return New(http.StatusConflict, code, message, nil)
}

// DealBreaker carries the violation list back to the caller as structured
// data; resubmitting with override=true proceeds. Not a system fault.
func DealBreaker(message string, violations interface{}) *AppError {
	e := Conflict(CodeDealBreaker, message)
	e.Details = violations
	return e
}

// StorageConflict marks a transient storage race that survived the bounded
// internal retries. The caller may safely retry the whole operation.
func StorageConflict(err error) *AppError {
	e := New(http.StatusServiceUnavailable, CodeStorageConflict, "Storage conflict, please retry", err)
	e.Retryable = true
	return e
}

// StorageUnavailable guarantees the swipe was not recorded; the caller should
// retry the whole operation.
func StorageUnavailable(err error) *AppError {
	e := New(http.StatusServiceUnavailable, CodeStorageUnavailable, "Storage unavailable, please retry", err)
	e.Retryable = true
	return e
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, CodeInternal, "Internal Server Error", err)
}
