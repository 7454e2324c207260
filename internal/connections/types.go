package connections

import (
	"fmt"

	"recipely/internal/dbmysql"
)

// SyncStateKind discriminates the local/remote agreement states of a
// managed connection.
type SyncStateKind string

const (
	SyncStateSynced      SyncStateKind = "synced"
	SyncStatePendingSync SyncStateKind = "pending_sync"
	SyncStateFailed      SyncStateKind = "sync_failed"
)

// SyncState is the managed connection's position in the sync state
// machine. RetryCount is meaningful for pending_sync, Err for sync_failed.
type SyncState struct {
	Kind       SyncStateKind
	RetryCount int
	Err        error
}

func Synced() SyncState {
	return SyncState{Kind: SyncStateSynced}
}

func PendingSync(retryCount int) SyncState {
	return SyncState{Kind: SyncStatePendingSync, RetryCount: retryCount}
}

func SyncFailed(err error) SyncState {
	return SyncState{Kind: SyncStateFailed, Err: err}
}

func (s SyncState) String() string {
	switch s.Kind {
	case SyncStatePendingSync:
		return fmt.Sprintf("pending_sync(%d)", s.RetryCount)
	case SyncStateFailed:
		return fmt.Sprintf("sync_failed(%v)", s.Err)
	default:
		return string(s.Kind)
	}
}

// ManagedConnection is the connection manager's unit of cached truth: the
// edge as currently known locally plus its sync state. Only the manager
// mutates SyncState.
type ManagedConnection struct {
	Connection dbmysql.Connection
	SyncState  SyncState

	// RemoteVersion is the last remote version token this device
	// confirmed; zero means the record never synced.
	RemoteVersion int64
}

// RelationshipKind is the UI-facing classification of the relationship
// between the current user and another user.
type RelationshipKind string

const (
	RelationshipNone            RelationshipKind = "none"
	RelationshipCurrentUser     RelationshipKind = "current_user"
	RelationshipPendingOutgoing RelationshipKind = "pending_outgoing"
	RelationshipPendingIncoming RelationshipKind = "pending_incoming"
	RelationshipConnected       RelationshipKind = "connected"
	RelationshipSyncing         RelationshipKind = "syncing"
	RelationshipFailed          RelationshipKind = "failed"
)

// RelationshipState is the derived presentation state. Err is set only
// for RelationshipFailed.
type RelationshipState struct {
	Kind RelationshipKind
	Err  error
}
