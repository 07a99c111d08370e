package middleware

import (
	"errors"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Internal details stay in the log, never in the response.
			logger.Log.ErrorContext(c.Request.Context(), "Internal Server Error",
				"error", err,
				"path", c.FullPath(),
			)
			appErr = apperror.Internal(err)
		}
		response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
	}
}
