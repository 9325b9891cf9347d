package sender

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/thunderguard-ph/thunderguard/pkg/alert"
)

// postmarkAPI is the slice of the Postmark client used by EmailSender,
// extracted for tests.
type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// EmailSender is the asynchronous channel: a Postmark-backed transactional
// email sender with meaningful latency and real failure modes. It is always
// invoked from a delivery unit of work, never on the dispatch path.
type EmailSender struct {
	client postmarkAPI
	cfg    EmailConfig
}

// NewEmailSender creates a Postmark-backed email sender.
// Both tokens and a valid sender address are required; failing fast here
// beats discovering a broken channel during an actual emergency.
func NewEmailSender(cfg EmailConfig) (*EmailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !ValidEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.ReplyToEmail != "" && !ValidEmail(cfg.ReplyToEmail) {
		return nil, fmt.Errorf("%w: ReplyToEmail must be a valid email address", ErrInvalidConfig)
	}

	return &EmailSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		cfg:    cfg,
	}, nil
}

// MustNewEmailSender creates an email sender that panics on invalid config.
func MustNewEmailSender(cfg EmailConfig) *EmailSender {
	s, err := NewEmailSender(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Name implements Sender.
func (s *EmailSender) Name() string { return "email" }

// Deliver sends the message through Postmark.
//
// Failure classification: a transport error means the API was never
// reached, which is an environmental condition of the deployment; an API
// error code means Postmark answered and rejected the request, which is a
// credential or address problem no retry would fix.
func (s *EmailSender) Deliver(ctx context.Context, to string, msg alert.Message) error {
	if to == "" {
		return ErrEmptyAddress
	}
	if !ValidEmail(to) {
		return fmt.Errorf("%w: malformed recipient address %q", ErrFatal, to)
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.cfg.SenderEmail,
		ReplyTo:  s.cfg.ReplyToEmail,
		To:       to,
		Subject:  msg.Subject,
		TextBody: msg.Body,
	})
	if err != nil {
		return errors.Join(ErrEnvironmental, err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("%w: postmark error %d: %s", ErrFatal, resp.ErrorCode, resp.Message)
	}
	return nil
}
