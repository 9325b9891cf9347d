package sender

import "errors"

var (
	// ErrEnvironmental marks transport-level failures (connection refused,
	// DNS, timeouts) that depend on the deployment environment. They are
	// logged as skips and never escalated past the delivery unit of work.
	ErrEnvironmental = errors.New("sender: environmental delivery failure")

	// ErrFatal marks failures no retry would fix: bad credentials, rejected
	// sender identity, malformed recipient address. Logged under a distinct
	// category for operator diagnosis.
	ErrFatal = errors.New("sender: fatal delivery failure")

	// ErrInvalidConfig is returned by constructors for incomplete sender
	// configuration.
	ErrInvalidConfig = errors.New("sender: invalid config")

	// ErrEmptyAddress is returned when Deliver is called with no address.
	// The dispatcher skips empty addresses before ever reaching a sender,
	// so seeing this error indicates a wiring bug.
	ErrEmptyAddress = errors.New("sender: empty destination address")
)
