package tombstone

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestStore_MarkAsDeleted_CreatesTombstone(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	st := NewStore(gormDB, 30)

	mock.ExpectQuery("SELECT (.+) FROM `tombstones` WHERE entity_id = (.+)").
		WithArgs("recipe-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"entity_id", "deleted_at", "remote_record_name"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `tombstones`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := st.MarkAsDeleted(context.Background(), "recipe-1", nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MarkAsDeleted_IsIdempotent(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	st := NewStore(gormDB, 30)

	// Existing tombstone found: no insert is issued.
	mock.ExpectQuery("SELECT (.+) FROM `tombstones` WHERE entity_id = (.+)").
		WithArgs("recipe-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"entity_id", "deleted_at"}).
			AddRow("recipe-1", time.Now()))

	err := st.MarkAsDeleted(context.Background(), "recipe-1", nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_IsDeleted(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	st := NewStore(gormDB, 30)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `tombstones` WHERE entity_id = (.+)").
		WithArgs("recipe-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	deleted, err := st.IsDeleted(context.Background(), "recipe-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `tombstones` WHERE entity_id = (.+)").
		WithArgs("recipe-2").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	deleted, err = st.IsDeleted(context.Background(), "recipe-2")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UnmarkAsDeleted_AbsentIsNotAnError(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	st := NewStore(gormDB, 30)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `tombstones` WHERE entity_id = (.+)").
		WithArgs("recipe-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := st.UnmarkAsDeleted(context.Background(), "recipe-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FetchAllDeletedIDs(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	st := NewStore(gormDB, 30)

	mock.ExpectQuery("SELECT `entity_id` FROM `tombstones`").
		WillReturnRows(sqlmock.NewRows([]string{"entity_id"}).
			AddRow("recipe-1").
			AddRow("recipe-2"))

	deleted, err := st.FetchAllDeletedIDs(context.Background())
	require.NoError(t, err)
	assert.Len(t, deleted, 2)
	assert.Contains(t, deleted, "recipe-1")
	assert.Contains(t, deleted, "recipe-2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CleanupOldTombstones_StrictlyOlderThanCutoff(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	st := NewStore(gormDB, 30).(*store)
	st.now = func() time.Time { return now }

	// The sweep uses a strict < comparison against now - 30d, so a
	// tombstone exactly at the boundary is retained.
	cutoff := now.Add(-30 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `tombstones` WHERE deleted_at < (.+)").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	removed, err := st.CleanupOldTombstones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CleanupOldTombstones_EmptyStore(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	st := NewStore(gormDB, 30)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `tombstones` WHERE deleted_at < (.+)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := st.CleanupOldTombstones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
