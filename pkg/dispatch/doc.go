// Package dispatch implements the broadcast dispatch engine.
//
// One trigger moves through a fixed sequence: parse the alert level
// (unknown levels short-circuit to an ignored result with no side
// effects), resolve the location and its hotline block, compose the shared
// message once, snapshot the reachable recipients exactly once, then fan
// out per recipient - SMS inline, email as an isolated unit of work. The
// caller gets {success, count} back as soon as every delivery has been
// initiated.
//
// Failure isolation is the defining property: a recipient's delivery
// failing, timing out, or panicking affects neither other recipients nor
// the already-returned acknowledgment. Outcomes surface only through the
// operational log, one record per (recipient, channel) attempt.
//
// Asynchronous deliveries draw from a bounded concurrency pool and carry a
// per-attempt timeout; there is no cancellation, no retry, and no ordering
// guarantee across recipients. Shutdown drains in-flight units for orderly
// process exit.
package dispatch
