package dbmysql

import (
	"time"
)

// Tombstone records that an entity was deleted locally. The sync path
// consults tombstones before accepting a remote record for the same id,
// otherwise replication lag on the remote store resurrects deletions.
type Tombstone struct {
	EntityID         string    `gorm:"column:entity_id;primaryKey;size:36" json:"entity_id"`
	DeletedAt        time.Time `gorm:"column:deleted_at;not null;index" json:"deleted_at"`
	RemoteRecordName *string   `gorm:"column:remote_record_name;size:255" json:"remote_record_name,omitempty"`
}
