package connect

import (
	"context"
	"fmt"
	"time"

	"github.com/joshua-takyi/tzsched/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

func MongoDBConnect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

func MongoDBDisconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %w", err)
	}
	return nil
}

// IndexModels lists the indexes the store relies on, by collection: the
// unique profile name behind DuplicateName, and the per-profile event listing.
func IndexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		models.ProfileColName: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("name_unique"),
			},
		},
		models.EventColName: {
			{
				Keys:    bson.D{{Key: "profiles", Value: 1}, {Key: "startDateTime", Value: 1}},
				Options: options.Index().SetName("profiles_start"),
			},
		},
		models.EventLogColName: {
			{
				Keys:    bson.D{{Key: "eventId", Value: 1}, {Key: "loggedAt", Value: 1}},
				Options: options.Index().SetName("event_logged_at"),
			},
		},
	}
}

func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	for col, idx := range IndexModels() {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", col, err)
		}
	}
	return nil
}
