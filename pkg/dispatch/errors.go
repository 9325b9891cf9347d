package dispatch

import "errors"

var (
	// ErrInvalidDispatcher is returned by NewDispatcher for missing collaborators.
	ErrInvalidDispatcher = errors.New("dispatch: invalid dispatcher configuration")

	// ErrSnapshotFailed is returned when the recipient snapshot cannot be
	// taken. It is the only trigger-path error: once the snapshot exists,
	// nothing downstream can fail the broadcast.
	ErrSnapshotFailed = errors.New("dispatch: failed to snapshot reachable recipients")
)
