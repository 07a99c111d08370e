package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
)

// ErrNotConfigured is returned when the provider has no credentials.
var ErrNotConfigured = errors.New("email service is not configured")

// ErrorKind classifies why a provider refused or failed a send.
type ErrorKind string

const (
	KindAuth          ErrorKind = "auth"
	KindRejected      ErrorKind = "rejected"
	KindUnavailable   ErrorKind = "unavailable"
	KindTimeout       ErrorKind = "timeout"
	KindNotConfigured ErrorKind = "not_configured"
	KindUnknown       ErrorKind = "unknown"
)

// DeliveryError is the single failure type of every Sender.
type DeliveryError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery failed (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a DeliveryError anywhere in err's chain.
func KindOf(err error) ErrorKind {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

func newDeliveryError(provider string, kind ErrorKind, err error) *DeliveryError {
	return &DeliveryError{Provider: provider, Kind: kind, Err: err}
}

// classifyTransport covers failures every provider shares: deadlines and network errors.
func classifyTransport(ctx context.Context, err error) (ErrorKind, bool) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return KindTimeout, true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout, true
		}
		return KindUnavailable, true
	}
	return "", false
}

// classifySMTP maps SMTP reply codes: 53x is auth, other 5xx a permanent
// rejection, 4xx a transient provider problem.
func classifySMTP(ctx context.Context, err error) ErrorKind {
	if kind, ok := classifyTransport(ctx, err); ok {
		return kind
	}
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch {
		case tpErr.Code == 530 || tpErr.Code == 534 || tpErr.Code == 535:
			return KindAuth
		case tpErr.Code >= 500:
			return KindRejected
		case tpErr.Code >= 400:
			return KindUnavailable
		}
	}
	return KindUnknown
}

// classifyHTTP maps provider API status codes.
func classifyHTTP(ctx context.Context, status int, err error) ErrorKind {
	if kind, ok := classifyTransport(ctx, err); ok {
		return kind
	}
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429 || status >= 500:
		return KindUnavailable
	case status >= 400:
		return KindRejected
	}
	return KindUnknown
}
