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

// JournalRepo persists journal entries.
type JournalRepo struct {
	coll *mongo.Collection
}

// Create inserts a journal entry and fills in its generated id.
func (r *JournalRepo) Create(ctx context.Context, entry *models.JournalModel) error {
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
func (r *JournalRepo) ListByUser(ctx context.Context, userID string) ([]models.JournalModel, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []models.JournalModel{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"userId": oid},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	entries := []models.JournalModel{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
