package database

import (
	"context"
	"time"

	"pagecraft/config"
	"pagecraft/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection. The connect
// timeout comes from MONGO_CONNECT_TIMEOUT_S.
func InitDB() {
	logger := utils.GetLogger().Sugar()

	timeout := time.Duration(config.AppConfig.MongoConnectSecs) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	logger.Info("Connected to MongoDB")
}
