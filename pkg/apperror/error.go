package apperror

import "net/http"

type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return New(http.StatusBadRequest, message, err)
}

func PayloadTooLarge(err error) *AppError {
	return New(http.StatusRequestEntityTooLarge, "Request body too large", err)
}

// Validation carries per-field messages back to the client.
func Validation(message string, fields map[string]string, err error) *AppError {
	appErr := New(http.StatusBadRequest, message, err)
	appErr.Fields = fields
	return appErr
}

func MethodNotAllowed() *AppError {
	return New(http.StatusMethodNotAllowed, "Method Not Allowed", nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

// Internal hides err from the client behind a generic message.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", err)
}
