package database

import (
	"context"
	"time"

	"github.com/mindhaven/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DiaryRepo persists diary entries.
type DiaryRepo struct {
	coll *mongo.Collection
}

// Create inserts a diary entry and fills in its generated id.
func (r *DiaryRepo) Create(ctx context.Context, entry *models.DiaryModel) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid
	}
	return nil
}

// ListByUser returns all entries of one owner, newest first.
func (r *DiaryRepo) ListByUser(ctx context.Context, userID string) ([]models.DiaryModel, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []models.DiaryModel{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"userId": oid},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	entries := []models.DiaryModel{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
