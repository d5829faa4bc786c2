package database

import (
	"context"
	"log"
	"time"

	"smartexam_backend/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, one per top-level document collection.
const (
	QuestionsCollection        = "questions"
	QuestionPacksCollection    = "question_packs"
	UsersCollection            = "users"
	VerificationLogsCollection = "verification_logs"
	RevenueLogsCollection      = "revenue_logs"
	PlatformStatsCollection    = "platform_stats"
)

// InitMongo connects to the document store and returns the database handle.
// Returns (nil, nil) when no URI is configured; callers must treat a nil
// handle as "store not configured" rather than an error.
func InitMongo(cfg *config.MongoConfig) (*mongo.Database, error) {
	if !cfg.Configured() {
		log.Println("Mongo URI not set, store-backed endpoints will answer 503")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("Document store connection established")

	name := cfg.Database
	if name == "" {
		name = "smartexam"
	}
	return client.Database(name), nil
}
