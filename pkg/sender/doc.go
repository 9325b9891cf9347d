// Package sender implements the two broadcast delivery channels behind a
// single Sender contract.
//
// The synchronous channel (SMSGateway) is a simulated carrier handoff: it
// completes locally, never blocks, and always succeeds, so the dispatcher
// can call it inline. The asynchronous channel (EmailSender) is a
// Postmark-backed network call with real latency; the dispatcher runs it
// inside isolated delivery units of work. DevEmailSender substitutes for
// Postmark in environments without credentials by writing alerts to disk.
//
// Failures carry a class, not just a message: errors.Is(err,
// ErrEnvironmental) identifies deployment-dependent transport problems,
// errors.Is(err, ErrFatal) identifies credential, configuration, and
// address problems. The classification happens here so the dispatch layer
// can log each category distinctly without parsing provider errors.
package sender
