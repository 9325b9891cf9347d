// Package presence tracks which registered users are currently reachable.
//
// The registry is deliberately in-memory: its contract is that presence
// resets to "all unreachable" exactly once, at process start, and the zero
// construction of Registry is that reset. An external store would survive
// restarts and break the contract.
//
// Writers and readers are decoupled by role: the authentication flow marks
// users reachable on login, the broadcast dispatcher only takes snapshots.
// Snapshot returns a copy, so a broadcast operates on a fixed recipient set
// even while logins and logouts continue concurrently.
package presence
