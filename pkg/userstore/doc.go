// Package userstore persists registered users in a single-file SQLite
// database and adapts them into the dispatcher's recipient snapshot.
//
// The schema is ensured on every open, including backfilling columns that
// older database files predate, so an upgraded binary can run against any
// existing data file. Passwords are stored as bcrypt hashes; Authenticate
// accepts either the phone number or the email address as the identifier,
// matching the login form.
//
// PresenceFilteredSource is the bridge to the broadcast engine: it joins
// the stored users against the in-memory presence registry and yields only
// the currently reachable ones.
package userstore
