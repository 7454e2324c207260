package connections

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"recipely/internal/common"
	"recipely/internal/config"
	"recipely/internal/dbmysql"
	"recipely/internal/events"
	"recipely/internal/remote"
	"recipely/internal/session"
	"recipely/internal/tombstone"
)

// ConnectionManager is the single in-process authority reconciling local
// and remote connection state for the signed-in user. It owns the
// in-memory cache of managed connections and is the only component that
// mutates their sync state. One instance exists per session; sign-out
// destroys it, sign-in builds a fresh one.
//
// Mutations are optimistic: the local repository is written immediately
// and the remote mirror is enqueued. Local state is never rolled back on
// remote failure; the discrepancy surfaces through SyncState.
type ConnectionManager struct {
	session    *session.Session
	repo       ConnectionRepository
	tombstones tombstone.Store
	store      remote.RemoteStore
	queue      *OperationQueue
	bus        *events.Bus

	mu           sync.RWMutex
	cache        map[string]*ManagedConnection // keyed by other user id
	pendingCount int
}

func NewConnectionManager(
	sess *session.Session,
	repo ConnectionRepository,
	tombstones tombstone.Store,
	store remote.RemoteStore,
	bus *events.Bus,
	syncCfg config.SyncConfig,
) *ConnectionManager {
	m := &ConnectionManager{
		session:    sess,
		repo:       repo,
		tombstones: tombstones,
		store:      store,
		bus:        bus,
		cache:      make(map[string]*ManagedConnection),
	}
	m.queue = NewOperationQueue(store, syncCfg, m.handleOutcome)
	return m
}

// ConnectionStatus is a synchronous cache read; no I/O. Returns nil when
// no connection with the other user is known.
func (m *ConnectionManager) ConnectionStatus(otherUserID string) *ManagedConnection {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.cache[otherUserID]
	if !ok {
		return nil
	}
	snapshot := *entry
	return &snapshot
}

// Connections returns a snapshot of every cached managed connection.
func (m *ConnectionManager) Connections() []*ManagedConnection {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*ManagedConnection, 0, len(m.cache))
	for _, entry := range m.cache {
		snapshot := *entry
		result = append(result, &snapshot)
	}
	return result
}

// PendingRequestsCount is the badge value: incoming requests awaiting a
// response.
func (m *ConnectionManager) PendingRequestsCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pendingCount
}

// SendConnectionRequest writes a pending edge locally, caches it as
// pending sync, and enqueues the remote mirror.
func (m *ConnectionManager) SendConnectionRequest(ctx context.Context, toUserID string, snapshot common.UserSnapshot) error {
	if err := common.ValidateUserID(toUserID); err != nil {
		return err
	}
	if toUserID == m.session.UserID {
		return common.ErrSelfConnection
	}

	_, err := m.repo.FetchConnection(ctx, m.session.UserID, toUserID)
	if err == nil {
		return common.ErrConnectionExists
	}
	if !errors.Is(err, common.ErrConnectionNotFound) {
		return err
	}

	now := time.Now()
	connection := &dbmysql.Connection{
		ID:              uuid.NewString(),
		FromUserID:      m.session.UserID,
		ToUserID:        toUserID,
		Status:          dbmysql.ConnectionStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
		FromUsername:    snapshot.Username,
		FromDisplayName: snapshot.DisplayName,
	}
	if err := m.repo.Save(ctx, connection); err != nil {
		return err
	}

	m.mu.Lock()
	m.cache[toUserID] = &ManagedConnection{
		Connection: *connection,
		SyncState:  PendingSync(0),
	}
	m.mu.Unlock()

	m.queue.Enqueue(Operation{
		ConnectionID: connection.ID,
		Type:         OpUpsert,
		Record:       connectionToRecord(connection, 0),
	})
	return nil
}

// AcceptConnection transitions an incoming pending edge to accepted.
func (m *ConnectionManager) AcceptConnection(ctx context.Context, connectionID string) error {
	connection, err := m.repo.FetchByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if connection.ToUserID != m.session.UserID {
		return errors.New("only the receiving user can accept a connection request")
	}
	if connection.Status != dbmysql.ConnectionStatusPending {
		return errors.New("connection request is not pending")
	}

	connection.Status = dbmysql.ConnectionStatusAccepted
	connection.UpdatedAt = time.Now()
	if err := m.repo.Save(ctx, connection); err != nil {
		return err
	}

	otherUserID := connection.OtherUserID(m.session.UserID)
	var version int64

	m.mu.Lock()
	if entry, ok := m.cache[otherUserID]; ok {
		version = entry.RemoteVersion
	}
	m.cache[otherUserID] = &ManagedConnection{
		Connection:    *connection,
		SyncState:     PendingSync(0),
		RemoteVersion: version,
	}
	m.recomputeBadgeLocked()
	m.mu.Unlock()

	m.publishBadge()
	m.queue.Enqueue(Operation{
		ConnectionID: connection.ID,
		Type:         OpUpsert,
		Record:       connectionToRecord(connection, version),
	})
	return nil
}

// RejectConnection removes the edge outright; no rejected status is
// persisted, so a later request from either side starts clean.
func (m *ConnectionManager) RejectConnection(ctx context.Context, connectionID string) error {
	return m.removeConnection(ctx, connectionID)
}

// DeleteConnection removes the edge from either side.
func (m *ConnectionManager) DeleteConnection(ctx context.Context, connectionID string) error {
	return m.removeConnection(ctx, connectionID)
}

func (m *ConnectionManager) removeConnection(ctx context.Context, connectionID string) error {
	connection, err := m.repo.FetchByID(ctx, connectionID)
	if err != nil {
		return err
	}

	otherUserID := connection.OtherUserID(m.session.UserID)

	m.mu.RLock()
	var version int64
	if entry, ok := m.cache[otherUserID]; ok {
		version = entry.RemoteVersion
	}
	m.mu.RUnlock()

	// Tombstone before anything else so a concurrent reconciliation pass
	// cannot resurrect the edge from a stale remote read. The remote record
	// name is absent only when the edge never reached the remote store.
	var remoteRecordName *string
	if version > 0 {
		name := remote.RecordTypeConnection + "/" + connection.ID
		remoteRecordName = &name
	}
	if err := m.tombstones.MarkAsDeleted(ctx, connection.ID, remoteRecordName); err != nil {
		return err
	}
	if err := m.repo.Delete(ctx, connection); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.cache, otherUserID)
	m.recomputeBadgeLocked()
	m.mu.Unlock()

	m.publishBadge()
	m.queue.Enqueue(Operation{
		ConnectionID: connection.ID,
		Type:         OpDelete,
		Record:       connectionToRecord(connection, version),
	})
	return nil
}

// RetryFailedOperation re-enqueues the remote mirror for a connection in
// sync_failed, resetting it to pending_sync(0). Automatic retrying had
// stopped; this is the explicit user-initiated resume.
func (m *ConnectionManager) RetryFailedOperation(ctx context.Context, connectionID string) error {
	m.mu.Lock()
	var entry *ManagedConnection
	for _, cached := range m.cache {
		if cached.Connection.ID == connectionID {
			entry = cached
			break
		}
	}
	if entry == nil {
		m.mu.Unlock()
		return common.ErrConnectionNotFound
	}
	if entry.SyncState.Kind != SyncStateFailed {
		m.mu.Unlock()
		return common.ErrNotRetryable
	}
	entry.SyncState = PendingSync(0)
	connection := entry.Connection
	version := entry.RemoteVersion
	m.mu.Unlock()

	m.queue.Enqueue(Operation{
		ConnectionID: connection.ID,
		Type:         OpUpsert,
		Record:       connectionToRecord(&connection, version),
	})
	return nil
}

// LoadConnections runs a full reconciliation pass: local edges, remote
// edges filtered through the tombstone set, a merge where remote wins on
// updated_at, and a cache rebuild. An edge currently pending sync is
// never overwritten mid-flight by the merge.
func (m *ConnectionManager) LoadConnections(ctx context.Context, forUserID string) error {
	local, err := m.repo.FetchConnections(ctx, forUserID)
	if err != nil {
		return err
	}

	merged := make(map[string]*dbmysql.Connection, len(local))
	versions := make(map[string]int64)
	for _, connection := range local {
		merged[connection.OtherUserID(forUserID)] = connection
	}

	remoteRecords, err := m.store.Fetch(ctx, remote.Predicate{
		Type:   remote.RecordTypeConnection,
		UserID: forUserID,
	})
	if err != nil {
		// Reconciliation degrades to local truth when the remote store is
		// unreachable; the next pass catches up.
		log.Printf("reconciliation: remote fetch failed, using local state only: %v", err)
	} else {
		deletedIDs, err := m.tombstones.FetchAllDeletedIDs(ctx)
		if err != nil {
			return err
		}
		for _, record := range remoteRecords {
			if _, deleted := deletedIDs[record.ID]; deleted {
				continue
			}
			connection, err := recordToConnection(record)
			if err != nil {
				log.Printf("reconciliation: %v", err)
				continue
			}
			if !connection.InvolvesUser(forUserID) {
				continue
			}
			otherUserID := connection.OtherUserID(forUserID)

			if m.isPendingSync(otherUserID) {
				// A mutation is in flight for this edge; the merge must
				// not clobber it.
				continue
			}

			existing, ok := merged[otherUserID]
			if ok && !record.UpdatedAt.IsZero() && existing.UpdatedAt.After(connection.UpdatedAt) {
				continue
			}
			merged[otherUserID] = connection
			versions[otherUserID] = record.Version
			if err := m.repo.Save(ctx, connection); err != nil {
				return err
			}
		}
	}

	m.mu.Lock()
	rebuilt := make(map[string]*ManagedConnection, len(merged))
	for otherUserID, connection := range merged {
		state := Synced()
		version := versions[otherUserID]
		if previous, ok := m.cache[otherUserID]; ok {
			// A mutation that landed after the local snapshot was taken is
			// newer than anything this pass merged. Carry the cached edge
			// through untouched, not just its sync state.
			if previous.SyncState.Kind != SyncStateSynced {
				rebuilt[otherUserID] = &ManagedConnection{
					Connection:    previous.Connection,
					SyncState:     previous.SyncState,
					RemoteVersion: previous.RemoteVersion,
				}
				continue
			}
			if version == 0 {
				version = previous.RemoteVersion
			}
		}
		rebuilt[otherUserID] = &ManagedConnection{
			Connection:    *connection,
			SyncState:     state,
			RemoteVersion: version,
		}
	}
	m.cache = rebuilt
	m.recomputeBadgeLocked()
	m.mu.Unlock()

	m.publishBadge()
	return nil
}

// UpdateBadgeCount recomputes the pending-incoming count from the cache
// without a reconciliation pass.
func (m *ConnectionManager) UpdateBadgeCount() {
	m.mu.Lock()
	m.recomputeBadgeLocked()
	m.mu.Unlock()
	m.publishBadge()
}

// Shutdown drains the operation queue. In-flight retries run to their cap
// first; a partially-applied local/remote state is worse than a delayed
// confirmation.
func (m *ConnectionManager) Shutdown() {
	m.queue.Shutdown()
}

func (m *ConnectionManager) isPendingSync(otherUserID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.cache[otherUserID]
	return ok && entry.SyncState.Kind == SyncStatePendingSync
}

func (m *ConnectionManager) recomputeBadgeLocked() {
	count := 0
	for _, entry := range m.cache {
		if entry.Connection.Status == dbmysql.ConnectionStatusPending &&
			entry.Connection.ToUserID == m.session.UserID {
			count++
		}
	}
	m.pendingCount = count
}

func (m *ConnectionManager) publishBadge() {
	if m.bus == nil {
		return
	}
	m.mu.RLock()
	count := m.pendingCount
	m.mu.RUnlock()
	m.bus.Publish(events.BadgeUpdated{Count: count})
}

// handleOutcome is the queue's report channel back into the cache. It is
// the only path that moves a managed connection out of pending_sync.
func (m *ConnectionManager) handleOutcome(outcome Outcome) {
	m.mu.Lock()
	var entry *ManagedConnection
	for _, cached := range m.cache {
		if cached.Connection.ID == outcome.ConnectionID {
			entry = cached
			break
		}
	}

	switch {
	case outcome.Err == nil:
		if entry != nil {
			entry.SyncState = Synced()
			if outcome.Record != nil {
				entry.RemoteVersion = outcome.Record.Version
			}
		}
	case !outcome.Terminal:
		if entry != nil {
			entry.SyncState = PendingSync(outcome.Attempts)
		}
	default:
		if entry != nil {
			entry.SyncState = SyncFailed(outcome.Err)
		}
	}
	m.mu.Unlock()

	if m.bus == nil {
		if outcome.Terminal {
			log.Printf("sync failed for connection %s: %v", outcome.ConnectionID, outcome.Err)
		}
		return
	}
	switch {
	case outcome.Err == nil:
		m.bus.Publish(events.ConnectionSynced{ConnectionID: outcome.ConnectionID})
	case outcome.Terminal:
		m.bus.Publish(events.SyncFailed{ConnectionID: outcome.ConnectionID, Err: outcome.Err})
	}
}
