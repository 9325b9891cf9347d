package sender

import (
	"context"

	"github.com/thunderguard-ph/thunderguard/pkg/alert"
)

// Sender delivers one composed message to one address over one channel.
//
// Implementations classify failures with the package sentinel errors:
// ErrEnvironmental for transport-level unreachability that is expected in
// some deployment environments, ErrFatal for credential, configuration, or
// address problems that no retry would fix. Callers branch on errors.Is;
// senders never swallow failures themselves.
type Sender interface {
	// Name identifies the channel in logs ("sms", "email").
	Name() string

	// Deliver sends the message to the address. A nil return means the
	// message was handed to the underlying transport; it is not a
	// delivery receipt.
	Deliver(ctx context.Context, to string, msg alert.Message) error
}
