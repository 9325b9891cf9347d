// Package alert defines the broadcast severity levels and the message
// composer.
//
// Levels arrive from the wire as color codes ("yellow", "orange") and are
// parsed case-insensitively; anything unrecognized maps to LevelIgnored,
// which short-circuits the broadcast with no side effects.
//
// Compose produces one immutable (subject, body) template per trigger;
// Personalize is the per-recipient greeting transform applied by the
// dispatcher. Both are pure functions, which keeps the content contract
// trivially testable.
package alert
