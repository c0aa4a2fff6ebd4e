package errors

import "errors"

// Domain errors - these represent pipeline failures surfaced to the caller.
// Per-cell coercion anomalies are deliberately NOT errors: malformed numeric
// or date cells degrade to zero/empty/omitted so a single bad row never
// aborts an upload.
var (
	// Input errors (4xx)
	ErrNoSheet        = errors.New("no sheet found")
	ErrFileRequired   = errors.New("no file in request")
	ErrEmptyRecords   = errors.New("no records to export")
	ErrInvalidVersion = errors.New("invalid version id")

	// Not found
	ErrVersionNotFound = errors.New("version not found")

	// Generic
	ErrInternal    = errors.New("internal server error")
	ErrRateLimited = errors.New("rate limit exceeded")
)

// AppError wraps errors with additional context for HTTP responses
type AppError struct {
	Err        error  // The underlying error
	Message    string // User-friendly message
	Code       string // Machine-readable error code
	StatusCode int    // HTTP status code
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error constructors for common cases

func NewBadRequestError(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		Code:       "BAD_REQUEST",
		StatusCode: 400,
	}
}

func NewNotFoundError(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		Code:       "NOT_FOUND",
		StatusCode: 404,
	}
}

func NewProcessingError(err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    "Erro ao processar o arquivo.",
		Code:       "PROCESSING_ERROR",
		StatusCode: 500,
	}
}
