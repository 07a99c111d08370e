package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ContactConfig is the fixed envelope every notification uses.
type ContactConfig struct {
	From    string   // sender, usually the operator's own mailbox
	To      []string // operator mailbox
	Layout  email.Layout
	Timeout time.Duration
}

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
	cfg      ContactConfig
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, validate *validator.Validate, cfg ContactConfig) domain.ContactUsecase {
	if cfg.Layout == "" {
		cfg.Layout = email.LayoutFull
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		cfg:      cfg,
	}
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) error {
	sub := normalize(req)
	if err := uc.validate.StructCtx(ctx, sub); err != nil {
		return &domain.ValidationError{Fields: validation.FieldErrors(err)}
	}

	rendered, err := email.RenderContact(uc.cfg.Layout, email.ContactEmailData{
		SenderName:  sub.Name,
		SenderEmail: sub.Email,
		Subject:     sub.Subject,
		Message:     sub.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	msg := &email.Message{
		From:    uc.cfg.From,
		To:      uc.cfg.To,
		ReplyTo: email.FormatAddress(sub.Name, sub.Email),
		Subject: rendered.Subject,
		Text:    rendered.Text,
		HTML:    rendered.HTML,
	}

	// A visitor closing the tab must not abort a send that already started.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.Timeout)
	defer cancel()

	if err := uc.sender.Send(sendCtx, msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}

// normalize returns a trimmed copy with the sender name resolved. The text
// body carries visitor input verbatim; only the HTML alternative is sanitized.
func normalize(req *domain.ContactSubmission) *domain.ContactSubmission {
	sub := &domain.ContactSubmission{
		Name:      strings.TrimSpace(req.Name),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
	}
	sub.Name = sub.SenderName()
	return sub
}
