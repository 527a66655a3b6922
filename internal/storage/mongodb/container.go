package mongodb

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kabarettimpro/theater-api/internal/config"
	"github.com/kabarettimpro/theater-api/internal/logger"
)

// Container bundles the database handle with all repositories. It is created
// once before the server accepts requests and held for the process lifetime.
type Container struct {
	db        *mongo.Database
	log       *log.Logger
	infoRepo  InfoRepository
	ownerRepo OwnerRepository
	eventRepo EventRepository
}

// NewContainer connects to MongoDB and initializes all repositories
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Repository("mongodb_container")
	log.Info("Initializing MongoDB repository container...")

	db, err := Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	container := NewContainerWithDatabase(db)

	if err := container.Health(); err != nil {
		log.Error("Container health check failed", "error", err)
		return nil, fmt.Errorf("container health check failed: %w", err)
	}

	log.Info("MongoDB repository container initialized successfully")
	return container, nil
}

// NewContainerWithDatabase creates a container over an existing database handle
func NewContainerWithDatabase(db *mongo.Database) *Container {
	return &Container{
		db:        db,
		log:       logger.Repository("mongodb_container"),
		infoRepo:  NewInfoRepository(db),
		ownerRepo: NewOwnerRepository(db),
		eventRepo: NewEventRepository(db),
	}
}

// Infos returns the info repository
func (c *Container) Infos() InfoRepository {
	return c.infoRepo
}

// Owners returns the owner repository
func (c *Container) Owners() OwnerRepository {
	return c.ownerRepo
}

// Events returns the event repository
func (c *Container) Events() EventRepository {
	return c.eventRepo
}

// Database returns the underlying database handle
func (c *Container) Database() *mongo.Database {
	return c.db
}

// Health verifies the database connection behind the container
func (c *Container) Health() error {
	return HealthCheck(c.db)
}

// ListCollectionNames lists the collection names of the underlying database
func (c *Container) ListCollectionNames(ctx context.Context) ([]string, error) {
	return ListCollectionNames(ctx, c.db)
}

// Close disconnects the underlying client
func (c *Container) Close(ctx context.Context) error {
	return Disconnect(ctx, c.db)
}
