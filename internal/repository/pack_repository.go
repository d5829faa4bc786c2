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

type PackRepository struct {
	col *mongo.Collection
}

func NewPackRepository(db *mongo.Database) *PackRepository {
	if db == nil {
		return &PackRepository{}
	}
	return &PackRepository{col: db.Collection(database.QuestionPacksCollection)}
}

func (r *PackRepository) Insert(ctx context.Context, p *model.QuestionPack) (string, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	p.ID = id
	return id.Hex(), nil
}

func (r *PackRepository) FindAll(ctx context.Context) ([]model.QuestionPack, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	packs := []model.QuestionPack{}
	if err := cursor.All(ctx, &packs); err != nil {
		return nil, err
	}
	return packs, nil
}

// UpdateFields applies a blind partial update; last write wins at the
// store's per-document granularity.
func (r *PackRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.ErrNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return util.ErrNotFound
	}
	return nil
}

func (r *PackRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.ErrNotFound
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *PackRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *PackRepository) CountPublished(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"isPublished": true})
}

func (r *PackRepository) CountCreatedAfter(ctx context.Context, thresholdMillis int64) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gt": thresholdMillis}})
}

// PriceSum walks every pack and totals priceCents over packs that define a
// price, for the dashboard's mean price.
func (r *PackRepository) PriceSum(ctx context.Context) (totalCents int64, priced int64, err error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var p model.QuestionPack
		if err := cursor.Decode(&p); err != nil {
			return 0, 0, err
		}
		if p.PriceCents > 0 {
			totalCents += p.PriceCents
			priced++
		}
	}
	return totalCents, priced, cursor.Err()
}
