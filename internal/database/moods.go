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

// MoodRepo persists sentiment entries.
type MoodRepo struct {
	coll *mongo.Collection
}

// Create inserts a mood entry and fills in its generated id.
func (r *MoodRepo) Create(ctx context.Context, entry *models.MoodModel) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now()
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

// ListByUser returns the mood history of one owner, newest first.
func (r *MoodRepo) ListByUser(ctx context.Context, userID string) ([]models.MoodModel, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []models.MoodModel{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"userId": oid},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	entries := []models.MoodModel{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
