// Package httpserver wraps net/http with env-driven configuration,
// graceful shutdown, and SIGINT/SIGTERM handling, so main can run a
// handler with one blocking call.
package httpserver
