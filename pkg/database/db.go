// Package database wraps the shared MongoDB client.
//
// Usage:
//
//	if err := database.Connect(); err != nil { … }
//	coll := database.Collection("orders")
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joycybakery/fournil/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Connect opens the Mongo client, verifies the connection with a ping, and
// selects the configured database. Returns an error instead of calling
// log.Fatal so the caller can shut down gracefully.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.MongoURI()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	Client = client
	DB = client.Database(config.MongoDB())
	return nil
}

// Disconnect closes the Mongo client. Call on shutdown.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// Collection returns a handle to the named collection.
func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

// EnsureIndexes creates the indexes the app relies on. Safe to call on every
// boot; Mongo treats existing identical indexes as a no-op.
func EnsureIndexes(ctx context.Context) error {
	byCollection := map[string][]mongo.IndexModel{
		"orders": {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		"vacations": {
			{Keys: bson.D{{Key: "startDate", Value: 1}}},
		},
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"teamMembers": {
			{Keys: bson.D{{Key: "order", Value: 1}}},
		},
		"logs": {
			{Keys: bson.D{{Key: "time", Value: -1}}},
		},
	}

	for coll, models := range byCollection {
		if _, err := Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("database: ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
