package sender

import (
	"context"
	"log/slog"

	"github.com/thunderguard-ph/thunderguard/pkg/alert"
	"github.com/thunderguard-ph/thunderguard/pkg/logger"
)

// SMSGateway is the synchronous channel: a simulated carrier handoff that
// completes locally with near-zero latency and always succeeds. It stands
// in for a real gateway integration, which is out of scope; the dispatch
// path treats it as a cheap inline call.
type SMSGateway struct {
	log *slog.Logger
}

// SMSOption configures an SMSGateway.
type SMSOption func(*SMSGateway)

// WithSMSLogger sets the logger used for the simulated handoff output.
func WithSMSLogger(log *slog.Logger) SMSOption {
	return func(g *SMSGateway) {
		if log != nil {
			g.log = log
		}
	}
}

// NewSMSGateway creates the simulated SMS channel.
func NewSMSGateway(opts ...SMSOption) *SMSGateway {
	g := &SMSGateway{log: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name implements Sender.
func (g *SMSGateway) Name() string { return "sms" }

// Deliver logs the simulated handoff. It never blocks and never fails for
// a non-empty address.
func (g *SMSGateway) Deliver(ctx context.Context, to string, msg alert.Message) error {
	if to == "" {
		return ErrEmptyAddress
	}

	g.log.LogAttrs(ctx, slog.LevelInfo, "sms gateway handoff",
		logger.Component("sender"),
		logger.Channel(g.Name()),
		logger.Recipient(to),
		slog.String("subject", msg.Subject),
		slog.Int("body_bytes", len(msg.Body)),
	)
	return nil
}
