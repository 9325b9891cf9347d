// Package logger provides a small factory over log/slog plus typed
// attribute helpers for the broadcast domain.
//
// The factory chooses handler format and level through functional options,
// with environment presets:
//
//	log := logger.New(logger.WithProduction("thunderguard"))
//	logger.SetAsDefault(log)
//
// Attribute helpers keep log keys consistent across packages; delivery
// outcomes are logged with Channel, Recipient, and BroadcastID so operators
// can correlate every attempt of one trigger.
package logger
