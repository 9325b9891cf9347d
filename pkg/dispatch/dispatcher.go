package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thunderguard-ph/thunderguard/pkg/alert"
	"github.com/thunderguard-ph/thunderguard/pkg/hotline"
	"github.com/thunderguard-ph/thunderguard/pkg/logger"
	"github.com/thunderguard-ph/thunderguard/pkg/sender"
)

// Dispatcher orchestrates one broadcast per trigger: resolve the level,
// compose the shared message, snapshot the reachable recipients once, and
// fan deliveries out across both channels.
//
// The synchronous channel runs inline on the trigger path; each
// asynchronous delivery runs in its own unit of work drawing from a
// bounded concurrency pool. Broadcast returns as soon as every delivery is
// initiated - it never waits for asynchronous completions, and no delivery
// failure ever reaches the caller.
type Dispatcher struct {
	hotlines *hotline.Directory
	source   RecipientSource
	sms      sender.Sender
	email    sender.Sender

	log          *slog.Logger
	emailTimeout time.Duration
	sem          chan struct{}
	wg           sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. All four collaborators are required.
func NewDispatcher(hotlines *hotline.Directory, source RecipientSource, sms, email sender.Sender, opts ...Option) (*Dispatcher, error) {
	if hotlines == nil {
		return nil, fmt.Errorf("%w: hotline directory is required", ErrInvalidDispatcher)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: recipient source is required", ErrInvalidDispatcher)
	}
	if sms == nil {
		return nil, fmt.Errorf("%w: sms sender is required", ErrInvalidDispatcher)
	}
	if email == nil {
		return nil, fmt.Errorf("%w: email sender is required", ErrInvalidDispatcher)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Dispatcher{
		hotlines:     hotlines,
		source:       source,
		sms:          sms,
		email:        email,
		log:          options.logger,
		emailTimeout: options.emailTimeout,
		sem:          make(chan struct{}, options.maxConcurrentDeliveries),
	}, nil
}

// Broadcast runs one trigger to the point of initiation and returns the
// acknowledgment. An unrecognized level short-circuits to StatusIgnored
// with zero side effects. The only error path is a failed recipient
// snapshot; delivery failures are logged, never returned.
func (d *Dispatcher) Broadcast(ctx context.Context, trig Trigger) (Result, error) {
	level := alert.ParseLevel(trig.Level)
	if !level.Actionable() {
		d.log.LogAttrs(ctx, slog.LevelDebug, "trigger ignored",
			logger.Component("dispatch"),
			slog.String("raw_level", trig.Level),
		)
		return Result{Status: StatusIgnored}, nil
	}

	location := trig.Location
	if location == "" {
		location = hotline.DefaultLocation
	}
	shared := alert.Compose(level, location, d.hotlines.Lookup(location))

	// One snapshot per trigger. Presence changes after this point belong
	// to the next broadcast.
	recipients, err := d.source.ReachableRecipients(ctx)
	if err != nil {
		return Result{}, errors.Join(ErrSnapshotFailed, err)
	}

	broadcastID := uuid.NewString()
	d.log.LogAttrs(ctx, slog.LevelInfo, "broadcast triggered",
		logger.Component("dispatch"),
		logger.BroadcastID(broadcastID),
		logger.AlertLevel(level.String()),
		logger.Location(location),
		slog.Int("recipients", len(recipients)),
	)

	for _, rcpt := range recipients {
		personal := alert.Personalize(rcpt.Name, shared)

		if rcpt.Phone != "" {
			d.deliverInline(ctx, broadcastID, rcpt.Phone, personal)
		} else {
			d.logOutcome(ctx, broadcastID, d.sms.Name(), "", errNoAddress)
		}

		if rcpt.Email != "" {
			d.launchEmail(ctx, broadcastID, rcpt.Email, personal)
		} else {
			d.logOutcome(ctx, broadcastID, d.email.Name(), "", errNoAddress)
		}
	}

	return Result{Status: StatusSuccess, Count: len(recipients)}, nil
}

// deliverInline runs the synchronous channel on the trigger path. The
// gateway is local and cheap, but a misbehaving implementation must not
// take the dispatch loop down with it.
func (d *Dispatcher) deliverInline(ctx context.Context, broadcastID, to string, msg alert.Message) {
	defer func() {
		if r := recover(); r != nil {
			d.logOutcome(ctx, broadcastID, d.sms.Name(), to, fmt.Errorf("%w: panic: %v", sender.ErrFatal, r))
		}
	}()
	d.logOutcome(ctx, broadcastID, d.sms.Name(), to, d.sms.Deliver(ctx, to, msg))
}

// launchEmail starts one asynchronous delivery unit of work. The unit
// acquires its own pool slot, so a saturated pool delays deliveries
// without delaying the caller's acknowledgment. The unit runs on a
// detached context: the trigger's HTTP request ends long before delivery
// completes, and its cancellation must not abort in-flight work.
func (d *Dispatcher) launchEmail(ctx context.Context, broadcastID, to string, msg alert.Message) {
	detached := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logOutcome(detached, broadcastID, d.email.Name(), to, fmt.Errorf("%w: panic: %v", sender.ErrFatal, r))
			}
		}()

		d.sem <- struct{}{}
		defer func() { <-d.sem }()

		attemptCtx, cancel := context.WithTimeout(detached, d.emailTimeout)
		defer cancel()

		d.logOutcome(detached, broadcastID, d.email.Name(), to, d.email.Deliver(attemptCtx, to, msg))
	}()
}

// errNoAddress marks a skipped channel for a recipient without an address
// on it. Logged, never returned.
var errNoAddress = errors.New("no address for channel")

// logOutcome is the delivery receipt of this system: every attempt ends
// here, tagged by failure class, with the channel and address identified.
func (d *Dispatcher) logOutcome(ctx context.Context, broadcastID, channel, to string, err error) {
	attrs := []slog.Attr{
		logger.Component("dispatch"),
		logger.BroadcastID(broadcastID),
		logger.Channel(channel),
		logger.Recipient(to),
	}

	switch {
	case err == nil:
		d.log.LogAttrs(ctx, slog.LevelInfo, "delivery sent", append(attrs, logger.Event("sent"))...)
	case errors.Is(err, errNoAddress):
		d.log.LogAttrs(ctx, slog.LevelDebug, "delivery skipped", append(attrs, logger.Event("skipped"))...)
	case errors.Is(err, sender.ErrEnvironmental):
		d.log.LogAttrs(ctx, slog.LevelWarn, "delivery blocked by environment",
			append(attrs, logger.Event("environmental_failure"), logger.Error(err))...)
	case errors.Is(err, sender.ErrFatal):
		d.log.LogAttrs(ctx, slog.LevelError, "delivery failed fatally",
			append(attrs, logger.Event("fatal_failure"), logger.Error(err))...)
	default:
		d.log.LogAttrs(ctx, slog.LevelError, "delivery failed",
			append(attrs, logger.Event("failure"), logger.Error(err))...)
	}
}

// Shutdown waits for in-flight asynchronous deliveries to finish, bounded
// by the context. Deliveries still running when the context expires are
// dropped, which the delivery contract permits.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
