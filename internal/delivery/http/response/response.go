package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope for every endpoint. The contact form only
// reads "message", so everything else is omitted when empty.
type Response struct {
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, fields map[string]string) {
	c.JSON(code, Response{
		Message: message,
		Errors:  fields,
	})
}
