package repository

import (
	"context"

	"smartexam_backend/internal/model"
	"smartexam_backend/internal/util"
	"smartexam_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	if db == nil {
		return &UserRepository{}
	}
	return &UserRepository{col: db.Collection(database.UsersCollection)}
}

func (r *UserRepository) Find(ctx context.Context, role string, sortBy string, sortOrder string, limit int64) ([]model.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	order := -1
	if sortOrder == "asc" {
		order = 1
	}
	if sortBy == "" {
		sortBy = "createdAt"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *UserRepository) CountActiveSince(ctx context.Context, thresholdMillis int64) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"lastLoginAt": bson.M{"$gt": thresholdMillis}})
}

// GrantPack unions a pack id into purchasedPacks. $addToSet is idempotent,
// so replayed webhooks are harmless.
func (r *UserRepository) GrantPack(ctx context.Context, userID, packID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return util.ErrNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"purchasedPacks": packID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return util.ErrNotFound
	}
	return nil
}
