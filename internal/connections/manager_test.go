package connections

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipely/internal/common"
	"recipely/internal/config"
	"recipely/internal/dbmysql"
	"recipely/internal/events"
	"recipely/internal/remote"
	"recipely/internal/session"
)

// fakeConnectionRepo is an in-memory ConnectionRepository for end-to-end
// manager tests; the SQL behavior itself is covered by the sqlmock tests.
type fakeConnectionRepo struct {
	mu   sync.Mutex
	byID map[string]*dbmysql.Connection
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{byID: make(map[string]*dbmysql.Connection)}
}

func (r *fakeConnectionRepo) Save(_ context.Context, connection *dbmysql.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.byID {
		if stored.ID != connection.ID && stored.SamePair(connection) {
			connection.ID = stored.ID
			connection.CreatedAt = stored.CreatedAt
			break
		}
	}
	clone := *connection
	r.byID[connection.ID] = &clone
	return nil
}

func (r *fakeConnectionRepo) FetchByID(_ context.Context, connectionID string) (*dbmysql.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[connectionID]
	if !ok {
		return nil, common.ErrConnectionNotFound
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeConnectionRepo) FetchConnection(_ context.Context, fromUserID, toUserID string) (*dbmysql.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	probe := &dbmysql.Connection{FromUserID: fromUserID, ToUserID: toUserID}
	for _, stored := range r.byID {
		if stored.SamePair(probe) {
			clone := *stored
			return &clone, nil
		}
	}
	return nil, common.ErrConnectionNotFound
}

func (r *fakeConnectionRepo) FetchConnections(_ context.Context, forUserID string) ([]*dbmysql.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*dbmysql.Connection
	for _, stored := range r.byID {
		if stored.InvolvesUser(forUserID) {
			clone := *stored
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeConnectionRepo) FetchAcceptedConnections(ctx context.Context, forUserID string) ([]*dbmysql.Connection, error) {
	all, _ := r.FetchConnections(ctx, forUserID)
	var result []*dbmysql.Connection
	for _, connection := range all {
		if connection.Status == dbmysql.ConnectionStatusAccepted {
			result = append(result, connection)
		}
	}
	return result, nil
}

func (r *fakeConnectionRepo) FetchSentRequests(_ context.Context, fromUserID string) ([]*dbmysql.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*dbmysql.Connection
	for _, stored := range r.byID {
		if stored.FromUserID == fromUserID && stored.Status == dbmysql.ConnectionStatusPending {
			clone := *stored
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeConnectionRepo) FetchReceivedRequests(_ context.Context, forUserID string) ([]*dbmysql.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*dbmysql.Connection
	for _, stored := range r.byID {
		if stored.ToUserID == forUserID && stored.Status == dbmysql.ConnectionStatusPending {
			clone := *stored
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeConnectionRepo) AreConnected(_ context.Context, user1, user2 string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	probe := &dbmysql.Connection{FromUserID: user1, ToUserID: user2}
	for _, stored := range r.byID {
		if stored.SamePair(probe) && stored.Status == dbmysql.ConnectionStatusAccepted {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConnectionRepo) Delete(_ context.Context, connection *dbmysql.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, connection.ID)
	return nil
}

func (r *fakeConnectionRepo) get(connectionID string) *dbmysql.Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[connectionID]
	if !ok {
		return nil
	}
	clone := *stored
	return &clone
}

// fakeTombstones records the order of marks and the remote record names
// passed with them so tests can assert both.
type fakeTombstones struct {
	mu      sync.Mutex
	deleted map[string]struct{}
	marks   []string
	names   map[string]*string
}

func newFakeTombstones() *fakeTombstones {
	return &fakeTombstones{
		deleted: make(map[string]struct{}),
		names:   make(map[string]*string),
	}
}

func (s *fakeTombstones) MarkAsDeleted(_ context.Context, entityID string, remoteRecordName *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted[entityID] = struct{}{}
	s.marks = append(s.marks, entityID)
	s.names[entityID] = remoteRecordName
	return nil
}

func (s *fakeTombstones) nameFor(entityID string) *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.names[entityID]
}

func (s *fakeTombstones) IsDeleted(_ context.Context, entityID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.deleted[entityID]
	return ok, nil
}

func (s *fakeTombstones) UnmarkAsDeleted(_ context.Context, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deleted, entityID)
	return nil
}

func (s *fakeTombstones) FetchAllDeletedIDs(_ context.Context) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]struct{}, len(s.deleted))
	for id := range s.deleted {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *fakeTombstones) CleanupOldTombstones(context.Context) (int64, error) {
	return 0, nil
}

// fakeRemoteStore scripts CreateOrUpdate results per call and records
// every mutation it sees. fetchHook, when set, runs during Fetch so tests
// can interleave mutations with a reconciliation pass.
type fakeRemoteStore struct {
	mu           sync.Mutex
	upsertErrs   []error
	upserts      []*remote.Record
	deletes      []*remote.Record
	fetchRecords []*remote.Record
	fetchErr     error
	fetchHook    func()
}

func (s *fakeRemoteStore) CreateOrUpdate(_ context.Context, record *remote.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts = append(s.upserts, record)
	if len(s.upsertErrs) == 0 {
		record.Version++
		return nil
	}
	err := s.upsertErrs[0]
	s.upsertErrs = s.upsertErrs[1:]
	if err == nil {
		record.Version++
	}
	return err
}

func (s *fakeRemoteStore) Delete(_ context.Context, record *remote.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, record)
	return nil
}

func (s *fakeRemoteStore) Fetch(_ context.Context, _ remote.Predicate) ([]*remote.Record, error) {
	s.mu.Lock()
	hook := s.fetchHook
	records := s.fetchRecords
	err := s.fetchErr
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	return records, err
}

func (s *fakeRemoteStore) setFetchHook(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchHook = hook
}

func (s *fakeRemoteStore) FetchShareMetadata(context.Context, string) (*remote.ShareMetadata, error) {
	return nil, remote.ErrShareNotFound
}

func (s *fakeRemoteStore) upsertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.upserts)
}

func (s *fakeRemoteStore) deleteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deletes)
}

type managerFixture struct {
	manager    *ConnectionManager
	repo       *fakeConnectionRepo
	tombstones *fakeTombstones
	store      *fakeRemoteStore
	bus        *events.Bus
}

func newManagerFixture(t *testing.T, userID string, store *fakeRemoteStore) *managerFixture {
	return newManagerFixtureWithConfig(t, userID, store, fastSyncConfig(5))
}

func newManagerFixtureWithConfig(t *testing.T, userID string, store *fakeRemoteStore, syncCfg config.SyncConfig) *managerFixture {
	t.Helper()

	sess, err := session.New(common.UserSnapshot{UserID: userID, Username: userID, DisplayName: userID})
	require.NoError(t, err)

	repo := newFakeConnectionRepo()
	tombstones := newFakeTombstones()
	bus := events.NewBus(16)
	manager := NewConnectionManager(sess, repo, tombstones, store, bus, syncCfg)

	t.Cleanup(func() {
		manager.Shutdown()
		bus.Close()
	})

	return &managerFixture{
		manager:    manager,
		repo:       repo,
		tombstones: tombstones,
		store:      store,
		bus:        bus,
	}
}

func waitForSyncState(t *testing.T, manager *ConnectionManager, otherUserID string, kind SyncStateKind) *ManagedConnection {
	t.Helper()
	var entry *ManagedConnection
	require.Eventually(t, func() bool {
		entry = manager.ConnectionStatus(otherUserID)
		return entry != nil && entry.SyncState.Kind == kind
	}, 2*time.Second, 5*time.Millisecond)
	return entry
}

func TestConnectionManager_SendConnectionRequest_OptimisticWriteThenSync(t *testing.T) {
	fx := newManagerFixture(t, "alice", &fakeRemoteStore{})

	err := fx.manager.SendConnectionRequest(context.Background(), "bob", common.UserSnapshot{
		UserID: "alice", Username: "alice", DisplayName: "Alice",
	})
	require.NoError(t, err)

	// The local write is visible immediately, before the remote confirms.
	entry := fx.manager.ConnectionStatus("bob")
	require.NotNil(t, entry)
	assert.Equal(t, dbmysql.ConnectionStatusPending, entry.Connection.Status)

	synced := waitForSyncState(t, fx.manager, "bob", SyncStateSynced)
	assert.Equal(t, int64(1), synced.RemoteVersion)
	assert.Equal(t, 1, fx.store.upsertCount())
	assert.NotNil(t, fx.repo.get(synced.Connection.ID))
}

func TestConnectionManager_SendConnectionRequest_RejectsSelf(t *testing.T) {
	fx := newManagerFixture(t, "alice", &fakeRemoteStore{})

	err := fx.manager.SendConnectionRequest(context.Background(), "alice", common.UserSnapshot{UserID: "alice"})
	assert.ErrorIs(t, err, common.ErrSelfConnection)
	assert.Equal(t, 0, fx.store.upsertCount())
}

func TestConnectionManager_SendConnectionRequest_RejectsDuplicatePair(t *testing.T) {
	fx := newManagerFixture(t, "alice", &fakeRemoteStore{})
	ctx := context.Background()

	require.NoError(t, fx.manager.SendConnectionRequest(ctx, "bob", common.UserSnapshot{UserID: "alice"}))
	waitForSyncState(t, fx.manager, "bob", SyncStateSynced)

	err := fx.manager.SendConnectionRequest(ctx, "bob", common.UserSnapshot{UserID: "alice"})
	assert.ErrorIs(t, err, common.ErrConnectionExists)
	assert.Equal(t, 1, fx.store.upsertCount())
}

func TestConnectionManager_AcceptConnection_OnlyRecipientAndOnlyPending(t *testing.T) {
	fx := newManagerFixture(t, "bob", &fakeRemoteStore{})
	ctx := context.Background()

	incoming := &dbmysql.Connection{
		ID:         "conn-1",
		FromUserID: "alice",
		ToUserID:   "bob",
		Status:     dbmysql.ConnectionStatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, fx.repo.Save(ctx, incoming))
	require.NoError(t, fx.manager.LoadConnections(ctx, "bob"))
	assert.Equal(t, 1, fx.manager.PendingRequestsCount())

	require.NoError(t, fx.manager.AcceptConnection(ctx, "conn-1"))

	entry := waitForSyncState(t, fx.manager, "alice", SyncStateSynced)
	assert.Equal(t, dbmysql.ConnectionStatusAccepted, entry.Connection.Status)
	assert.Equal(t, dbmysql.ConnectionStatusAccepted, fx.repo.get("conn-1").Status)
	assert.Equal(t, 0, fx.manager.PendingRequestsCount())

	// Accepting twice fails: the edge is no longer pending.
	assert.Error(t, fx.manager.AcceptConnection(ctx, "conn-1"))
}

func TestConnectionManager_AcceptConnection_RequesterCannotAccept(t *testing.T) {
	fx := newManagerFixture(t, "alice", &fakeRemoteStore{})
	ctx := context.Background()

	require.NoError(t, fx.repo.Save(ctx, &dbmysql.Connection{
		ID:         "conn-1",
		FromUserID: "alice",
		ToUserID:   "bob",
		Status:     dbmysql.ConnectionStatusPending,
	}))

	err := fx.manager.AcceptConnection(ctx, "conn-1")
	assert.Error(t, err)
	assert.Equal(t, 0, fx.store.upsertCount())
}

func TestConnectionManager_DeleteConnection_TombstonesBeforeLocalDelete(t *testing.T) {
	fx := newManagerFixture(t, "alice", &fakeRemoteStore{})
	ctx := context.Background()

	require.NoError(t, fx.manager.SendConnectionRequest(ctx, "bob", common.UserSnapshot{UserID: "alice"}))
	entry := waitForSyncState(t, fx.manager, "bob", SyncStateSynced)
	connectionID := entry.Connection.ID

	require.NoError(t, fx.manager.DeleteConnection(ctx, connectionID))

	assert.Nil(t, fx.manager.ConnectionStatus("bob"))
	assert.Nil(t, fx.repo.get(connectionID))

	deleted, err := fx.tombstones.IsDeleted(ctx, connectionID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The edge had synced, so the tombstone names the remote record.
	name := fx.tombstones.nameFor(connectionID)
	require.NotNil(t, name)
	assert.Equal(t, remote.RecordTypeConnection+"/"+connectionID, *name)

	require.Eventually(t, func() bool {
		return fx.store.deleteCount() == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestConnectionManager_DeleteConnection_NeverSyncedEdgeHasNoRemoteName(t *testing.T) {
	conflictErr := remote.NewError(remote.CodeConflict, errors.New("already exists"))
	fx := newManagerFixture(t, "alice", &fakeRemoteStore{upsertErrs: []error{conflictErr}})
	ctx := context.Background()

	require.NoError(t, fx.manager.SendConnectionRequest(ctx, "bob", common.UserSnapshot{UserID: "alice"}))
	entry := waitForSyncState(t, fx.manager, "bob", SyncStateFailed)
	require.Equal(t, int64(0), entry.RemoteVersion)

	connectionID := entry.Connection.ID
	require.NoError(t, fx.manager.DeleteConnection(ctx, connectionID))
	assert.Nil(t, fx.tombstones.nameFor(connectionID))
}

func TestConnectionManager_RemoteFailureCapThenManualRetry(t *testing.T) {
	networkErr := remote.NewError(remote.CodeNetworkUnavailable, errors.New("offline"))
	store := &fakeRemoteStore{
		// Five retriable failures exhaust the cap; the retry succeeds.
		upsertErrs: []error{networkErr, networkErr, networkErr, networkErr, networkErr},
	}
	fx := newManagerFixture(t, "alice", store)
	ctx := context.Background()

	syncFailures, unsubscribe := fx.bus.Subscribe()
	defer unsubscribe()

	require.NoError(t, fx.manager.SendConnectionRequest(ctx, "bob", common.UserSnapshot{UserID: "alice"}))

	entry := waitForSyncState(t, fx.manager, "bob", SyncStateFailed)
	require.Error(t, entry.SyncState.Err)
	assert.Contains(t, entry.SyncState.Err.Error(), "max retries exceeded")
	assert.Equal(t, 5, fx.store.upsertCount())

	// The local edge survives the remote failure.
	assert.NotNil(t, fx.repo.get(entry.Connection.ID))

	require.Eventually(t, func() bool {
		for {
			select {
			case event := <-syncFailures:
				if _, ok := event.(events.SyncFailed); ok {
					return true
				}
			default:
				return false
			}
		}
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, fx.manager.RetryFailedOperation(ctx, entry.Connection.ID))
	recovered := waitForSyncState(t, fx.manager, "bob", SyncStateSynced)
	assert.Equal(t, 6, fx.store.upsertCount())
	assert.Equal(t, int64(1), recovered.RemoteVersion)
}

func TestConnectionManager_RetryFailedOperation_RequiresFailedState(t *testing.T) {
	fx := newManagerFixture(t, "alice", &fakeRemoteStore{})
	ctx := context.Background()

	require.NoError(t, fx.manager.SendConnectionRequest(ctx, "bob", common.UserSnapshot{UserID: "alice"}))
	entry := waitForSyncState(t, fx.manager, "bob", SyncStateSynced)

	assert.ErrorIs(t, fx.manager.RetryFailedOperation(ctx, entry.Connection.ID), common.ErrNotRetryable)
	assert.ErrorIs(t, fx.manager.RetryFailedOperation(ctx, "conn-unknown"), common.ErrConnectionNotFound)
}

func TestConnectionManager_LoadConnections_FiltersTombstonedAndMalformedRecords(t *testing.T) {
	now := time.Now().UTC()
	store := &fakeRemoteStore{
		fetchRecords: []*remote.Record{
			connectionToRecord(&dbmysql.Connection{
				ID: "conn-live", FromUserID: "carol", ToUserID: "alice",
				Status: dbmysql.ConnectionStatusAccepted, CreatedAt: now, UpdatedAt: now,
			}, 3),
			connectionToRecord(&dbmysql.Connection{
				ID: "conn-dead", FromUserID: "dave", ToUserID: "alice",
				Status: dbmysql.ConnectionStatusAccepted, CreatedAt: now, UpdatedAt: now,
			}, 2),
			{ID: "conn-junk", Type: remote.RecordTypeConnection, Fields: map[string]interface{}{"from_user_id": "x"}},
		},
	}
	fx := newManagerFixture(t, "alice", store)
	ctx := context.Background()

	require.NoError(t, fx.tombstones.MarkAsDeleted(ctx, "conn-dead", nil))
	require.NoError(t, fx.manager.LoadConnections(ctx, "alice"))

	live := fx.manager.ConnectionStatus("carol")
	require.NotNil(t, live)
	assert.Equal(t, SyncStateSynced, live.SyncState.Kind)
	assert.Equal(t, int64(3), live.RemoteVersion)
	assert.NotNil(t, fx.repo.get("conn-live"))

	// The tombstoned edge never resurrects; the malformed record is skipped.
	assert.Nil(t, fx.manager.ConnectionStatus("dave"))
	assert.Nil(t, fx.repo.get("conn-dead"))
	assert.Nil(t, fx.repo.get("conn-junk"))
}

func TestConnectionManager_LoadConnections_KeepsMutationLandedMidPass(t *testing.T) {
	stale := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	networkErr := remote.NewError(remote.CodeNetworkUnavailable, errors.New("offline"))

	store := &fakeRemoteStore{
		// The accept's remote mirror fails once so the edge is still
		// pending sync when the pass rebuilds the cache.
		upsertErrs: []error{networkErr},
		fetchRecords: []*remote.Record{
			connectionToRecord(&dbmysql.Connection{
				ID: "conn-1", FromUserID: "alice", ToUserID: "bob",
				Status: dbmysql.ConnectionStatusPending, CreatedAt: stale, UpdatedAt: stale,
			}, 1),
		},
	}
	syncCfg := fastSyncConfig(5)
	syncCfg.InitialBackoffMs = 250
	fx := newManagerFixtureWithConfig(t, "bob", store, syncCfg)
	ctx := context.Background()

	require.NoError(t, fx.repo.Save(ctx, &dbmysql.Connection{
		ID: "conn-1", FromUserID: "alice", ToUserID: "bob",
		Status: dbmysql.ConnectionStatusPending, CreatedAt: stale, UpdatedAt: stale,
	}))
	require.NoError(t, fx.manager.LoadConnections(ctx, "bob"))

	// The accept lands after the pass took its local snapshot but before
	// the cache rebuild.
	fx.store.setFetchHook(func() {
		fx.store.setFetchHook(nil)
		require.NoError(t, fx.manager.AcceptConnection(ctx, "conn-1"))
	})
	require.NoError(t, fx.manager.LoadConnections(ctx, "bob"))

	entry := fx.manager.ConnectionStatus("alice")
	require.NotNil(t, entry)
	assert.Equal(t, dbmysql.ConnectionStatusAccepted, entry.Connection.Status)

	recovered := waitForSyncState(t, fx.manager, "alice", SyncStateSynced)
	assert.Equal(t, dbmysql.ConnectionStatusAccepted, recovered.Connection.Status)
}

func TestConnectionManager_LoadConnections_RemoteWinsOnNewerUpdatedAt(t *testing.T) {
	older := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	store := &fakeRemoteStore{
		fetchRecords: []*remote.Record{
			connectionToRecord(&dbmysql.Connection{
				ID: "conn-1", FromUserID: "alice", ToUserID: "bob",
				Status: dbmysql.ConnectionStatusAccepted, CreatedAt: older, UpdatedAt: newer,
			}, 4),
		},
	}
	fx := newManagerFixture(t, "alice", store)
	ctx := context.Background()

	require.NoError(t, fx.repo.Save(ctx, &dbmysql.Connection{
		ID: "conn-1", FromUserID: "alice", ToUserID: "bob",
		Status: dbmysql.ConnectionStatusPending, CreatedAt: older, UpdatedAt: older,
	}))

	require.NoError(t, fx.manager.LoadConnections(ctx, "alice"))

	entry := fx.manager.ConnectionStatus("bob")
	require.NotNil(t, entry)
	assert.Equal(t, dbmysql.ConnectionStatusAccepted, entry.Connection.Status)
	assert.Equal(t, dbmysql.ConnectionStatusAccepted, fx.repo.get("conn-1").Status)
}

func TestConnectionManager_LoadConnections_LocalWinsWhenNewer(t *testing.T) {
	older := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	store := &fakeRemoteStore{
		fetchRecords: []*remote.Record{
			connectionToRecord(&dbmysql.Connection{
				ID: "conn-1", FromUserID: "alice", ToUserID: "bob",
				Status: dbmysql.ConnectionStatusPending, CreatedAt: older, UpdatedAt: older,
			}, 1),
		},
	}
	fx := newManagerFixture(t, "alice", store)
	ctx := context.Background()

	require.NoError(t, fx.repo.Save(ctx, &dbmysql.Connection{
		ID: "conn-1", FromUserID: "alice", ToUserID: "bob",
		Status: dbmysql.ConnectionStatusAccepted, CreatedAt: older, UpdatedAt: newer,
	}))

	require.NoError(t, fx.manager.LoadConnections(ctx, "alice"))

	entry := fx.manager.ConnectionStatus("bob")
	require.NotNil(t, entry)
	assert.Equal(t, dbmysql.ConnectionStatusAccepted, entry.Connection.Status)
}

func TestConnectionManager_LoadConnections_DegradesToLocalOnRemoteError(t *testing.T) {
	store := &fakeRemoteStore{
		fetchErr: remote.NewError(remote.CodeNetworkUnavailable, errors.New("offline")),
	}
	fx := newManagerFixture(t, "alice", store)
	ctx := context.Background()

	require.NoError(t, fx.repo.Save(ctx, &dbmysql.Connection{
		ID: "conn-1", FromUserID: "alice", ToUserID: "bob",
		Status: dbmysql.ConnectionStatusAccepted,
	}))

	require.NoError(t, fx.manager.LoadConnections(ctx, "alice"))
	assert.NotNil(t, fx.manager.ConnectionStatus("bob"))
}

func TestConnectionManager_BadgeCountsIncomingPendingOnly(t *testing.T) {
	fx := newManagerFixture(t, "bob", &fakeRemoteStore{})
	ctx := context.Background()

	badgeEvents, unsubscribe := fx.bus.Subscribe()
	defer unsubscribe()

	require.NoError(t, fx.repo.Save(ctx, &dbmysql.Connection{
		ID: "conn-in", FromUserID: "alice", ToUserID: "bob",
		Status: dbmysql.ConnectionStatusPending,
	}))
	require.NoError(t, fx.repo.Save(ctx, &dbmysql.Connection{
		ID: "conn-out", FromUserID: "bob", ToUserID: "carol",
		Status: dbmysql.ConnectionStatusPending,
	}))
	require.NoError(t, fx.repo.Save(ctx, &dbmysql.Connection{
		ID: "conn-acc", FromUserID: "dave", ToUserID: "bob",
		Status: dbmysql.ConnectionStatusAccepted,
	}))

	require.NoError(t, fx.manager.LoadConnections(ctx, "bob"))
	assert.Equal(t, 1, fx.manager.PendingRequestsCount())

	var badge events.BadgeUpdated
	require.Eventually(t, func() bool {
		select {
		case event := <-badgeEvents:
			if b, ok := event.(events.BadgeUpdated); ok {
				badge = b
				return true
			}
		default:
		}
		return false
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, badge.Count)
}
