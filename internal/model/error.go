// internal/model/error.go
package model

// Application-level sentinel errors. Handlers map these to HTTP status codes.
import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict")
)

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// FieldError carries one validation message for one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIErrorResponse is the JSON error envelope. For validation failures the
// Fields list holds every failing field and Submitted echoes the rejected
// input so the client can re-render the form.
type APIErrorResponse struct {
	Error     ErrorDetail  `json:"error"`
	Fields    []FieldError `json:"fields,omitempty"`
	Submitted any          `json:"submitted,omitempty"`
}

// AppError wraps a sentinel error with response details.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
