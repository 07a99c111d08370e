// Package email delivers contact notifications through a transactional mail provider.
package email

import (
	"context"
	"fmt"
	"net/mail"

	"portfolio-backend/config"
)

const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

// Message is a fully rendered email ready for a provider.
type Message struct {
	From    string // "Name <addr>" or bare address
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string // optional alternative part
}

// Sender delivers one message. Implementations fail with *DeliveryError.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
	// IsConfigured reports whether credentials are present.
	IsConfigured() bool
	Name() string
}

// NewSender builds the provider selected by MAIL_PROVIDER.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.MailProvider {
	case ProviderSMTP, "":
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}), nil
	case ProviderResend:
		return NewResendSender(ResendConfig{
			APIKey: cfg.ResendAPIKey,
		}), nil
	default:
		return nil, fmt.Errorf("email: unknown mail provider %q", cfg.MailProvider)
	}
}

// FormatAddress renders "Name <addr>", or the bare address when name is empty.
func FormatAddress(name, addr string) string {
	if name == "" {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}
