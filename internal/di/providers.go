package di

import (
	"gorm.io/gorm"

	"recipely/internal/collections"
	"recipely/internal/config"
	"recipely/internal/connections"
	"recipely/internal/events"
	"recipely/internal/remote"
	"recipely/internal/tombstone"
)

// Application bundles the wired sync core for one signed-in session.
type Application struct {
	Config      *config.Config
	DB          *gorm.DB
	Bus         *events.Bus
	Remote      remote.RemoteStore
	Tombstones  tombstone.Store
	Connections *connections.ConnectionManager
	Collections collections.CollectionRepository
}

func ProvideSyncConfig(cfg *config.Config) config.SyncConfig {
	return cfg.Sync
}

func ProvideTombstoneStore(db *gorm.DB, cfg *config.Config) tombstone.Store {
	return tombstone.NewStore(db, cfg.Tombstone.RetentionDays)
}

func ProvideEventBus(cfg *config.Config) *events.Bus {
	return events.NewBus(cfg.Sync.QueueBufferSize)
}
