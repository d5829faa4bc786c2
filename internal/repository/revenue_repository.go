package repository

import (
	"context"
	"errors"

	"smartexam_backend/internal/model"
	"smartexam_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RevenueRepository struct {
	logs  *mongo.Collection
	stats *mongo.Collection
}

func collectionOrNil(db *mongo.Database, name string) *mongo.Collection {
	if db == nil {
		return nil
	}
	return db.Collection(name)
}

func NewRevenueRepository(db *mongo.Database) *RevenueRepository {
	return &RevenueRepository{
		logs:  collectionOrNil(db, database.RevenueLogsCollection),
		stats: collectionOrNil(db, database.PlatformStatsCollection),
	}
}

func (r *RevenueRepository) InsertLog(ctx context.Context, l *model.RevenueLog) error {
	_, err := r.logs.InsertOne(ctx, l)
	return err
}

// TotalRevenueCents reads the platform_stats summary document; a missing
// document means zero lifetime revenue.
func (r *RevenueRepository) TotalRevenueCents(ctx context.Context) (int64, error) {
	var doc model.PlatformStats
	err := r.stats.FindOne(ctx, bson.M{"_id": "summary"}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.TotalRevenueCents, nil
}
