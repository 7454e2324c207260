package tombstone

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"recipely/internal/dbmysql"
)

// Store is the local soft-delete ledger. Every record pulled from the
// remote store must be checked here before it is written locally, or a
// stale remote read resurrects a deletion.
type Store interface {
	MarkAsDeleted(ctx context.Context, entityID string, remoteRecordName *string) error
	IsDeleted(ctx context.Context, entityID string) (bool, error)
	UnmarkAsDeleted(ctx context.Context, entityID string) error
	FetchAllDeletedIDs(ctx context.Context) (map[string]struct{}, error)
	CleanupOldTombstones(ctx context.Context) (int64, error)
}

type store struct {
	db        *gorm.DB
	retention time.Duration
	now       func() time.Time
}

// NewStore returns a tombstone store with the given retention window in
// days. Tombstones strictly older than the window are swept by
// CleanupOldTombstones; one exactly at the boundary is retained.
func NewStore(db *gorm.DB, retentionDays int) Store {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &store{
		db:        db,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

func (s *store) MarkAsDeleted(ctx context.Context, entityID string, remoteRecordName *string) error {
	var existing dbmysql.Tombstone
	err := s.db.WithContext(ctx).Where("entity_id = ?", entityID).First(&existing).Error
	if err == nil {
		// Marking twice is a no-op; exactly one tombstone per entity.
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	tombstone := &dbmysql.Tombstone{
		EntityID:         entityID,
		DeletedAt:        s.now(),
		RemoteRecordName: remoteRecordName,
	}
	return s.db.WithContext(ctx).Create(tombstone).Error
}

func (s *store) IsDeleted(ctx context.Context, entityID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&dbmysql.Tombstone{}).
		Where("entity_id = ?", entityID).
		Count(&count).Error
	return count > 0, err
}

func (s *store) UnmarkAsDeleted(ctx context.Context, entityID string) error {
	// Removing an absent tombstone is not an error.
	return s.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Delete(&dbmysql.Tombstone{}).Error
}

func (s *store) FetchAllDeletedIDs(ctx context.Context) (map[string]struct{}, error) {
	var entityIDs []string
	err := s.db.WithContext(ctx).
		Model(&dbmysql.Tombstone{}).
		Pluck("entity_id", &entityIDs).Error
	if err != nil {
		return nil, err
	}

	deleted := make(map[string]struct{}, len(entityIDs))
	for _, id := range entityIDs {
		deleted[id] = struct{}{}
	}
	return deleted, nil
}

func (s *store) CleanupOldTombstones(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)

	// Strictly older than the cutoff: a tombstone exactly at the retention
	// boundary survives the sweep.
	result := s.db.WithContext(ctx).
		Where("deleted_at < ?", cutoff).
		Delete(&dbmysql.Tombstone{})
	return result.RowsAffected, result.Error
}
