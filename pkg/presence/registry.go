package presence

import "sync"

// Registry tracks which users are currently reachable for broadcasts.
//
// A Registry starts empty, which is the process-start reset the lifecycle
// requires: nobody is reachable until they authenticate. The login path is
// the only writer; the dispatch path only reads. All methods are safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	online map[int64]struct{}
}

// NewRegistry creates an empty registry. Construction is the one and only
// reset event in the registry's lifetime.
func NewRegistry() *Registry {
	return &Registry{online: make(map[int64]struct{})}
}

// MarkReachable records a successful authentication for the user.
func (r *Registry) MarkReachable(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.online[userID] = struct{}{}
}

// MarkUnreachable removes the user, e.g. on logout or session expiry.
// Unknown users are a no-op.
func (r *Registry) MarkUnreachable(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.online, userID)
}

// IsReachable reports whether the user is currently marked reachable.
func (r *Registry) IsReachable(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.online[userID]
	return ok
}

// Snapshot returns a point-in-time copy of the reachable user IDs. The
// returned slice is owned by the caller; later registry mutations do not
// affect it, which is what keeps a broadcast's recipient set consistent.
func (r *Registry) Snapshot() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.online))
	for id := range r.online {
		ids = append(ids, id)
	}
	return ids
}

// Count returns the number of reachable users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.online)
}
