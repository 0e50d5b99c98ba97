package database

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobportal/internal/config"
)

// DB bundles the long-lived Mongo client with the two collection
// handles everything else works against. The client is safe for
// concurrent use, so one instance serves the whole process.
type DB struct {
	Client       *mongo.Client
	Jobs         *mongo.Collection
	Applications *mongo.Collection
}

func Connect(cfg *config.Config) *DB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	log.Println("Database connection established")

	db := client.Database(cfg.DBName)
	return &DB{
		Client:       client,
		Jobs:         db.Collection("jobs"),
		Applications: db.Collection("application"),
	}
}

// Disconnect closes the client, waiting briefly for in-flight
// operations to finish.
func (db *DB) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client.Disconnect(ctx); err != nil {
		log.Warn("Error disconnecting from database: ", err)
	}
}

// Ping is used by the health endpoint.
func (db *DB) Ping(ctx context.Context) error {
	return db.Client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
