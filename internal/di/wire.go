//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"recipely/internal/collections"
	"recipely/internal/config"
	"recipely/internal/connections"
	"recipely/internal/remote"
	"recipely/internal/session"
)

// Declaration only; wire generates the real body in wire_gen.go.
func InitializeApplication(sess *session.Session, cfg *config.Config, db *gorm.DB, mongoClient *remote.MongoClient) (*Application, error) {
	wire.Build(
		remote.NewMongoStore,
		wire.Bind(new(remote.RemoteStore), new(*remote.MongoStore)),
		connections.NewConnectionRepository,
		connections.NewConnectionManager,
		collections.NewCollectionRepository,
		ProvideSyncConfig,
		ProvideTombstoneStore,
		ProvideEventBus,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
