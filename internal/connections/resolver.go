package connections

import (
	"recipely/internal/dbmysql"
)

// Resolve maps a cached managed connection (or its absence) to the
// relationship between the current user and another user. It is a pure
// function: no hidden state, no I/O, identical inputs always produce
// identical results.
//
// An in-flight or failed sync takes precedence over the status-derived
// mapping so the UI can show the discrepancy instead of a stale status.
func Resolve(mc *ManagedConnection, currentUserID, otherUserID string) RelationshipState {
	if otherUserID == currentUserID {
		return RelationshipState{Kind: RelationshipCurrentUser}
	}

	if mc == nil {
		return RelationshipState{Kind: RelationshipNone}
	}

	switch mc.SyncState.Kind {
	case SyncStatePendingSync:
		return RelationshipState{Kind: RelationshipSyncing}
	case SyncStateFailed:
		return RelationshipState{Kind: RelationshipFailed, Err: mc.SyncState.Err}
	}

	switch {
	case mc.Connection.Status == dbmysql.ConnectionStatusAccepted:
		return RelationshipState{Kind: RelationshipConnected}
	case mc.Connection.Status == dbmysql.ConnectionStatusPending && mc.Connection.FromUserID == currentUserID:
		return RelationshipState{Kind: RelationshipPendingOutgoing}
	case mc.Connection.Status == dbmysql.ConnectionStatusPending && mc.Connection.ToUserID == currentUserID:
		return RelationshipState{Kind: RelationshipPendingIncoming}
	}

	return RelationshipState{Kind: RelationshipNone}
}
