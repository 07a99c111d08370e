package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required).
// Extra middleware such as rate limiting runs before the handler.
func NewContactHandler(r gin.IRouter, contactUC domain.ContactUsecase, mw ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/send-email", append(mw, handler.SendEmail)...)
}

// SendEmail godoc
// @Summary      Submit Contact Form
// @Description  Forward a portfolio contact-form submission to the site owner's mailbox.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      405      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /send-email [post]
func (h *ContactHandler) SendEmail(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			_ = c.Error(apperror.PayloadTooLarge(err))
			return
		}
		_ = c.Error(apperror.BadRequest("Invalid request body", err))
		return
	}

	ctx := c.Request.Context()
	if err := h.contactUC.SendContactMessage(ctx, &req); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			_ = c.Error(apperror.Validation("Validation failed", vErr.Fields, err))
			return
		}

		// Provider detail stays server-side; the visitor only learns that it failed.
		logger.Log.ErrorContext(ctx, "Error sending email",
			"error", err,
			"kind", string(email.KindOf(err)),
		)
		_ = c.Error(apperror.New(http.StatusInternalServerError, "Failed to send email", err))
		return
	}

	response.Success(c, http.StatusOK, "Email sent successfully", nil)
}
