package connections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"recipely/internal/dbmysql"
)

func TestResolve_StateTable(t *testing.T) {
	syncErr := errors.New("remote conflict")

	pendingFromAlice := &ManagedConnection{
		Connection: dbmysql.Connection{
			ID:         "conn-1",
			FromUserID: "alice",
			ToUserID:   "bob",
			Status:     dbmysql.ConnectionStatusPending,
		},
		SyncState: Synced(),
	}
	accepted := &ManagedConnection{
		Connection: dbmysql.Connection{
			ID:         "conn-1",
			FromUserID: "alice",
			ToUserID:   "bob",
			Status:     dbmysql.ConnectionStatusAccepted,
		},
		SyncState: Synced(),
	}
	syncing := &ManagedConnection{
		Connection: dbmysql.Connection{
			ID:         "conn-1",
			FromUserID: "alice",
			ToUserID:   "bob",
			Status:     dbmysql.ConnectionStatusAccepted,
		},
		SyncState: PendingSync(2),
	}
	failed := &ManagedConnection{
		Connection: dbmysql.Connection{
			ID:         "conn-1",
			FromUserID: "alice",
			ToUserID:   "bob",
			Status:     dbmysql.ConnectionStatusPending,
		},
		SyncState: SyncFailed(syncErr),
	}

	tests := []struct {
		name          string
		mc            *ManagedConnection
		currentUserID string
		otherUserID   string
		wantKind      RelationshipKind
		wantErr       error
	}{
		{
			name:          "same user wins over everything",
			mc:            accepted,
			currentUserID: "alice",
			otherUserID:   "alice",
			wantKind:      RelationshipCurrentUser,
		},
		{
			name:          "no connection",
			mc:            nil,
			currentUserID: "alice",
			otherUserID:   "bob",
			wantKind:      RelationshipNone,
		},
		{
			name:          "pending outgoing for the requester",
			mc:            pendingFromAlice,
			currentUserID: "alice",
			otherUserID:   "bob",
			wantKind:      RelationshipPendingOutgoing,
		},
		{
			name:          "pending incoming for the recipient",
			mc:            pendingFromAlice,
			currentUserID: "bob",
			otherUserID:   "alice",
			wantKind:      RelationshipPendingIncoming,
		},
		{
			name:          "accepted is connected",
			mc:            accepted,
			currentUserID: "alice",
			otherUserID:   "bob",
			wantKind:      RelationshipConnected,
		},
		{
			name:          "in-flight sync overrides status",
			mc:            syncing,
			currentUserID: "alice",
			otherUserID:   "bob",
			wantKind:      RelationshipSyncing,
		},
		{
			name:          "failed sync carries its error",
			mc:            failed,
			currentUserID: "alice",
			otherUserID:   "bob",
			wantKind:      RelationshipFailed,
			wantErr:       syncErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := Resolve(tc.mc, tc.currentUserID, tc.otherUserID)
			assert.Equal(t, tc.wantKind, state.Kind)
			assert.Equal(t, tc.wantErr, state.Err)
		})
	}
}

func TestResolve_IsDeterministic(t *testing.T) {
	mc := &ManagedConnection{
		Connection: dbmysql.Connection{
			ID:         "conn-1",
			FromUserID: "alice",
			ToUserID:   "bob",
			Status:     dbmysql.ConnectionStatusPending,
		},
		SyncState: PendingSync(1),
	}

	first := Resolve(mc, "bob", "alice")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Resolve(mc, "bob", "alice"))
	}
}
