package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resend/resend-go/v3"
)

// ResendConfig holds Resend email provider configuration.
type ResendConfig struct {
	APIKey string
	// BaseURL overrides the API endpoint; must end with a slash.
	BaseURL    string
	HTTPClient *http.Client
}

// ResendSender implements Sender using the Resend API.
type ResendSender struct {
	client *resend.Client
	config ResendConfig
}

type statusKey struct{}

// statusRecorder stores the HTTP status of the provider response in the
// request context so failures can be classified without parsing messages.
type statusRecorder struct {
	next http.RoundTripper
}

func (t statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if resp != nil {
		if status, ok := req.Context().Value(statusKey{}).(*int); ok {
			*status = resp.StatusCode
		}
	}
	return resp, err
}

// NewResendSender creates a new Resend sender.
func NewResendSender(cfg ResendConfig) *ResendSender {
	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{}
	}
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	httpClient := *base
	httpClient.Transport = statusRecorder{next: transport}

	client := resend.NewCustomClient(&httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		if u, err := url.Parse(cfg.BaseURL); err == nil {
			client.BaseURL = u
		}
	}

	return &ResendSender{
		client: client,
		config: cfg,
	}
}

func (s *ResendSender) Name() string {
	return ProviderResend
}

func (s *ResendSender) IsConfigured() bool {
	return s.config.APIKey != ""
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return newDeliveryError(ProviderResend, KindNotConfigured, ErrNotConfigured)
	}

	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
		Tags:    []resend.Tag{{Name: "category", Value: "contact_form"}},
	}

	status := new(int)
	ctx = context.WithValue(ctx, statusKey{}, status)
	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		wrapped := fmt.Errorf("resend: failed to send email: %w", err)
		return newDeliveryError(ProviderResend, classifyHTTP(ctx, *status, err), wrapped)
	}

	return nil
}
