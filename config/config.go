package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	FrontendURL string
	// Allowed CORS origins. A single "*" allows any origin.
	AllowedOrigins []string
	// Proxies whose X-Forwarded-For is honoured. Empty means the peer address is the client.
	TrustedProxies []string
	// Mail dispatch
	MailProvider    string // "smtp" or "resend"
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	ResendAPIKey    string
	MailFrom        string
	MailFromName    string
	ContactEmailTo  string
	ContactTemplate string // "full" or "compact"
	MailSendTimeout time.Duration
	MaxBodyBytes    int64
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	// Observability
	SentryDSN         string
	SentryEnvironment string
	LogLevel          string
}

func LoadConfig() (*Config, error) {
	// .env is optional; production injects the environment directly
	_ = godotenv.Load()

	// GMAIL_USER / GMAIL_PASS are the legacy variable names
	smtpUser := getEnv("SMTP_USERNAME", getEnv("GMAIL_USER", ""))
	mailFrom := getEnv("MAIL_FROM", smtpUser)
	frontendURL := strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/")

	cfg := &Config{
		Port:        getEnv("PORT", "3001"),
		GinMode:     getEnv("GIN_MODE", ""),
		FrontendURL: frontendURL,
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{frontendURL}),
		TrustedProxies: getEnvList("TRUSTED_PROXIES", nil),
		// Mail
		MailProvider:    strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		SMTPHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUsername:    smtpUser,
		SMTPPassword:    getEnv("SMTP_PASSWORD", getEnv("GMAIL_PASS", "")),
		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		MailFrom:        mailFrom,
		MailFromName:    getEnv("MAIL_FROM_NAME", "Portfolio Contact"),
		ContactEmailTo:  getEnv("CONTACT_EMAIL_TO", mailFrom),
		ContactTemplate: strings.ToLower(getEnv("CONTACT_TEMPLATE", "full")),
		MailSendTimeout: time.Duration(getEnvInt("MAIL_SEND_TIMEOUT_SECONDS", 10)) * time.Second,
		MaxBodyBytes:    int64(getEnvInt("MAX_BODY_BYTES", 64<<10)),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		// Observability
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "production"),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.MailSendTimeout <= 0 {
		cfg.MailSendTimeout = 10 * time.Second
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 64 << 10
	}
	if cfg.RateLimitWindowSeconds <= 0 {
		cfg.RateLimitWindowSeconds = 60
	}
	if cfg.RateLimitContactThreshold <= 0 {
		cfg.RateLimitContactThreshold = 5
	}

	// Missing credentials are not fatal: the contact endpoint reports a delivery failure instead.
	if cfg.MailProvider == "smtp" && (cfg.SMTPUsername == "" || cfg.SMTPPassword == "") {
		log.Println("WARNING: SMTP_USERNAME/SMTP_PASSWORD not set. Contact emails will fail to send.")
	}
	if cfg.MailProvider == "resend" && cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Contact emails will fail to send.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimRight(strings.TrimSpace(item), "/"); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
