package userstore

import (
	"context"

	"github.com/thunderguard-ph/thunderguard/pkg/dispatch"
	"github.com/thunderguard-ph/thunderguard/pkg/presence"
)

// PresenceFilteredSource combines the user registry with the presence
// registry to produce the dispatcher's recipient snapshot: all registered
// users currently marked reachable.
//
// The presence snapshot is taken once per call, so the returned set is
// consistent even while logins continue; the dispatcher in turn calls this
// exactly once per trigger.
type PresenceFilteredSource struct {
	store    *Store
	registry *presence.Registry
}

// NewPresenceFilteredSource creates the dispatcher-facing recipient source.
func NewPresenceFilteredSource(store *Store, registry *presence.Registry) *PresenceFilteredSource {
	return &PresenceFilteredSource{store: store, registry: registry}
}

// ReachableRecipients implements dispatch.RecipientSource.
func (s *PresenceFilteredSource) ReachableRecipients(ctx context.Context) ([]dispatch.Recipient, error) {
	online := make(map[int64]struct{})
	for _, id := range s.registry.Snapshot() {
		online[id] = struct{}{}
	}
	if len(online) == 0 {
		return nil, nil
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	recipients := make([]dispatch.Recipient, 0, len(online))
	for _, u := range users {
		if _, ok := online[u.ID]; !ok {
			continue
		}
		recipients = append(recipients, dispatch.Recipient{
			Name:  u.Name,
			Phone: u.Phone,
			Email: u.Email,
		})
	}
	return recipients, nil
}
