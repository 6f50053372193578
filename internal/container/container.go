package container

import (
	"log/slog"

	"github.com/joshua-takyi/tzsched/internal/config"
	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the record store behind both repositories.
type Store interface {
	models.ProfileRepo
	models.EventRepo
}

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	Config         *config.Config
	StoreName      string
	ProfileService *services.ProfileService
	EventService   *services.EventService
}

// NewContainer wires the services over the store selected in cfg. The Mongo
// client is only used when cfg selects the mongodb driver.
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	var store Store
	if cfg.StoreDriver == config.StoreMemory {
		store = models.NewMemoryRepo()
	} else {
		store = models.MongodbNewRepo(mongoDBClient, cfg.MongoDBDatabase)
	}
	return NewContainerWithStore(logger, cfg, store)
}

func NewContainerWithStore(logger *slog.Logger, cfg *config.Config, store Store) *Container {
	return &Container{
		Logger:         logger,
		Config:         cfg,
		StoreName:      cfg.StoreDriver,
		ProfileService: services.NewProfileService(store, cfg.DefaultProfileTimezone),
		EventService:   services.NewEventService(store, store),
	}
}
