package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var DB *mongo.Database

// ConnectDB establishes the shared MongoDB connection. A ping failure is
// logged but does not stop the server from accepting requests; store calls
// made before the database is reachable fail with an internal error.
func ConnectDB(cfg *Config) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Printf("MongoDB connection error: %v", err)
		return
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("MongoDB ping failed: %v", err)
	} else {
		log.Println("Connected to MongoDB")
	}

	DB = client.Database(cfg.MongoDB)
}

// CreateIndexes ensures the uniqueness index on user names and the
// timestamp index used by the admin alert listing. The unique index is the
// authority on duplicate names; the handler pre-check is an optimization.
func CreateIndexes() error {
	if DB == nil {
		return mongo.ErrClientDisconnected
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = DB.Collection("alerts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}

// GetCollection returns a handle to a named collection, or nil when the
// database connection was never established.
func GetCollection(collectionName string) *mongo.Collection {
	if DB == nil {
		return nil
	}
	return DB.Collection(collectionName)
}
