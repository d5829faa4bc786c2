package repository

import (
	"context"
	"errors"

	"smartexam_backend/internal/model"
	"smartexam_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	col *mongo.Collection
}

// The db handle may be nil when the store is unconfigured; route middleware
// answers 503 before any repository method runs in that case.
func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	if db == nil {
		return &QuestionRepository{}
	}
	return &QuestionRepository{col: db.Collection(database.QuestionsCollection)}
}

func (r *QuestionRepository) Insert(ctx context.Context, q *model.Question) (string, error) {
	res, err := r.col.InsertOne(ctx, q)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	q.ID = id
	return id.Hex(), nil
}

// FindByID returns (nil, nil) for a missing or malformed id so that callers
// can apply the zero-contribution rule during mark-sum validation.
func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var q model.Question
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) FindRecent(ctx context.Context, limit int64) ([]model.Question, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []model.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *QuestionRepository) CountCreatedAfter(ctx context.Context, thresholdMillis int64) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gt": thresholdMillis}})
}
