package usecase

import (
	"context"

	"portfolio-backend/pkg/email"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sender email.Sender
	// redisPing is nil when no Redis is configured
	redisPing func(ctx context.Context) error
}

func NewHealthUsecase(sender email.Sender, redisPing func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{sender: sender, redisPing: redisPing}
}

// Check never fails the probe: a missing mailer or Redis degrades the
// contact form, it does not take the process down.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"provider": u.sender.Name(),
		"mailer":   "configured",
		"redis":    "disabled",
	}
	if !u.sender.IsConfigured() {
		status["mailer"] = "not_configured"
	}
	if u.redisPing != nil {
		if err := u.redisPing(ctx); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}
	return status
}
