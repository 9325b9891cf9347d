package dispatch

import "context"

// Recipient is a read-only view of one registered user at trigger time:
// a name for the greeting and one address per channel, either of which
// may be empty.
type Recipient struct {
	Name  string
	Phone string // synchronous-channel address
	Email string // asynchronous-channel address
}

// RecipientSource supplies the point-in-time set of reachable recipients.
// The dispatcher calls it exactly once per trigger and never caches the
// result across triggers.
type RecipientSource interface {
	ReachableRecipients(ctx context.Context) ([]Recipient, error)
}

// RecipientSourceFunc adapts a function to the RecipientSource interface.
type RecipientSourceFunc func(ctx context.Context) ([]Recipient, error)

func (f RecipientSourceFunc) ReachableRecipients(ctx context.Context) ([]Recipient, error) {
	return f(ctx)
}

// Status is the trigger outcome visible to the caller.
type Status string

const (
	// StatusSuccess means the broadcast was initiated for every recipient
	// in the snapshot. It says nothing about eventual delivery.
	StatusSuccess Status = "success"
	// StatusIgnored means the alert level was not recognized and the
	// trigger produced no side effects.
	StatusIgnored Status = "ignored"
)

// Result is the immediate acknowledgment returned to the trigger's caller.
// Count is the snapshot size and is meaningful only for StatusSuccess.
type Result struct {
	Status Status
	Count  int
}

// Trigger is the external input that starts a broadcast.
type Trigger struct {
	Level    string `json:"level"`
	Location string `json:"location,omitempty"`
}
