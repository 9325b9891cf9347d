// Package alerts is the HTTP API module: user registration, login (which
// marks presence), logout, and the alert trigger endpoint.
//
// The trigger endpoint returns the dispatcher's acknowledgment verbatim -
// {"status":"success","count":N} or {"status":"ignored"} - and never
// exposes delivery failures; those are operator-visible through logs only.
package alerts
