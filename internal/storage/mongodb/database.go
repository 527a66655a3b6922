package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kabarettimpro/theater-api/internal/config"
	"github.com/kabarettimpro/theater-api/internal/logger"
)

// Connect establishes a connection to the MongoDB database and verifies it
// with a ping before returning the database handle.
func Connect(cfg *config.Config) (*mongo.Database, error) {
	log := logger.Database()

	if err := validateDatabaseConfig(cfg); err != nil {
		log.Error("Database configuration validation failed", "error", err)
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	timeout := time.Duration(cfg.DB.ConnectTimeoutSeconds) * time.Second
	clientOpts := options.Client().
		ApplyURI(cfg.DB.URL).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	// Attempt connection with retry logic
	var client *mongo.Client
	var err error
	maxRetries := 3
	retryDelay := time.Second * 2

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Debug("Database connection attempt", "attempt", attempt, "max_retries", maxRetries)

		client, err = connectAndPing(clientOpts, timeout)
		if err == nil {
			break
		}

		log.Warn("Database connection failed", "attempt", attempt, "error", err)
		if attempt < maxRetries {
			log.Debug("Retrying database connection", "delay", retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2 // Exponential backoff
		}
	}

	if err != nil {
		log.Error("Failed to connect to database after retries", "error", err, "attempts", maxRetries)
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	log.Info("Successfully connected to MongoDB", "database", cfg.DB.Name)
	return client.Database(cfg.DB.Name), nil
}

func connectAndPing(clientOpts *options.ClientOptions, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}

// validateDatabaseConfig validates the database configuration
func validateDatabaseConfig(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if cfg.DB.URL == "" {
		return fmt.Errorf("database URL cannot be empty")
	}

	if cfg.DB.Name == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	return nil
}

// HealthCheck performs a health check on the database connection
func HealthCheck(db *mongo.Database) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// ListCollectionNames lists the collection names of the database
func ListCollectionNames(ctx context.Context, db *mongo.Database) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collection names: %w", err)
	}

	return names, nil
}

// Disconnect closes the underlying client connection
func Disconnect(ctx context.Context, db *mongo.Database) error {
	log := logger.Database()

	if db == nil {
		log.Warn("Attempted to close nil database connection")
		return nil
	}

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Error("Failed to close database connection", "error", err)
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	log.Info("Database connection closed successfully")
	return nil
}
