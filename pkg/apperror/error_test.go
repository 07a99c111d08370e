package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("smtp: 535 bad credentials")
	err := New(http.StatusInternalServerError, "Failed to send email", cause)

	assert.Equal(t, "Failed to send email", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestValidation(t *testing.T) {
	err := Validation("Validation failed", map[string]string{"message": "Message is required"}, nil)

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "Message is required", err.Fields["message"])
}

func TestMethodNotAllowed(t *testing.T) {
	err := MethodNotAllowed()
	assert.Equal(t, http.StatusMethodNotAllowed, err.Code)
	assert.Equal(t, "Method Not Allowed", err.Message)
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name    string
		err     *AppError
		code    int
		message string
	}{
		{name: "bad request", err: BadRequest("Invalid request body", cause), code: http.StatusBadRequest, message: "Invalid request body"},
		{name: "too large", err: PayloadTooLarge(cause), code: http.StatusRequestEntityTooLarge, message: "Request body too large"},
		{name: "too many", err: TooManyRequests("slow down"), code: http.StatusTooManyRequests, message: "slow down"},
		{name: "internal", err: Internal(cause), code: http.StatusInternalServerError, message: "An unexpected error occurred. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.NotContains(t, tt.err.Message, "cause")
		})
	}
	assert.ErrorIs(t, Internal(cause), cause)
}
