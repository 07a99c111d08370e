package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GMAIL_USER", "owner@gmail.com")
	t.Setenv("GMAIL_PASS", "app-password")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, "owner@gmail.com", cfg.SMTPUsername)
	assert.Equal(t, "app-password", cfg.SMTPPassword)
	assert.Equal(t, "owner@gmail.com", cfg.MailFrom)
	assert.Equal(t, "owner@gmail.com", cfg.ContactEmailTo)
	assert.Equal(t, "full", cfg.ContactTemplate)
	assert.Equal(t, 10*time.Second, cfg.MailSendTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 5, cfg.RateLimitContactThreshold)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("GMAIL_USER", "owner@gmail.com")
	t.Setenv("SMTP_USERNAME", "relay-login")
	t.Setenv("MAIL_FROM", "noreply@example.com")
	t.Setenv("CONTACT_EMAIL_TO", "inbox@example.com")
	t.Setenv("MAIL_PROVIDER", "RESEND")
	t.Setenv("MAIL_SEND_TIMEOUT_SECONDS", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://me.dev/, https://www.me.dev,,")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "relay-login", cfg.SMTPUsername)
	assert.Equal(t, "noreply@example.com", cfg.MailFrom)
	assert.Equal(t, "inbox@example.com", cfg.ContactEmailTo)
	assert.Equal(t, "resend", cfg.MailProvider)
	assert.Equal(t, 3*time.Second, cfg.MailSendTimeout)
	assert.Equal(t, []string{"https://me.dev", "https://www.me.dev"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}

func TestLoadConfig_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("MAIL_SEND_TIMEOUT_SECONDS", "-1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.MailSendTimeout)
}

func TestLoadConfig_NonPositiveLimitsFallBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "zero", value: "0"},
		{name: "negative", value: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RATE_LIMIT_WINDOW_SECONDS", tt.value)
			t.Setenv("RATE_LIMIT_CONTACT_THRESHOLD", tt.value)
			t.Setenv("MAX_BODY_BYTES", tt.value)

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
			assert.Equal(t, 5, cfg.RateLimitContactThreshold)
			assert.Equal(t, int64(64<<10), cfg.MaxBodyBytes)
		})
	}
}
