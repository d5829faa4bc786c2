package repository

import (
	"context"
	"errors"

	"smartexam_backend/internal/model"
	"smartexam_backend/internal/util"
	"smartexam_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VerificationLogRepository struct {
	col *mongo.Collection
}

func NewVerificationLogRepository(db *mongo.Database) *VerificationLogRepository {
	if db == nil {
		return &VerificationLogRepository{}
	}
	return &VerificationLogRepository{col: db.Collection(database.VerificationLogsCollection)}
}

// LogQuery carries the list filters and cursor.
type LogQuery struct {
	Status     string
	Type       string
	SortBy     string
	SortOrder  string
	StartAfter string
	Limit      int64
}

func (r *VerificationLogRepository) Insert(ctx context.Context, l *model.VerificationLog) (string, error) {
	res, err := r.col.InsertOne(ctx, l)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	l.ID = id
	return id.Hex(), nil
}

func (r *VerificationLogRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
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

// List returns one page sorted by q.SortBy. The cursor is the last document
// id of the previous page; pagination resumes strictly after that document's
// sort value.
func (r *VerificationLogRepository) List(ctx context.Context, q LogQuery) ([]model.VerificationLog, error) {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Type != "" {
		filter["type"] = q.Type
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "submittedAt"
	}
	order := -1
	if q.SortOrder == "asc" {
		order = 1
	}

	if q.StartAfter != "" {
		boundary, err := r.sortValueOf(ctx, q.StartAfter, sortBy)
		if err != nil {
			return nil, err
		}
		if boundary != nil {
			cmp := "$lt"
			if order == 1 {
				cmp = "$gt"
			}
			filter[sortBy] = bson.M{cmp: boundary}
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetLimit(q.Limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []model.VerificationLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// sortValueOf reads the cursor document's sort-field value. A vanished
// cursor document restarts from the top rather than failing the page.
func (r *VerificationLogRepository) sortValueOf(ctx context.Context, id, sortBy string) (interface{}, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc bson.M
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc[sortBy], nil
}
