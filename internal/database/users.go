package database

import (
	"context"
	"errors"
	"time"

	"github.com/mindhaven/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepo persists user documents, including the embedded chat list.
type UserRepo struct {
	coll *mongo.Collection
}

// GetByID returns the user with the given hex id, or nil when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.UserModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var u models.UserModel
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.UserModel, error) {
	var u models.UserModel
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user document and fills in its generated id.
func (r *UserRepo) Create(ctx context.Context, u *models.UserModel) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Chats == nil {
		u.Chats = []models.ChatMessage{}
	}
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

// UpdateChats replaces the stored chat list in one write. Concurrent updates
// for the same user are last-write-wins on the whole list.
func (r *UserRepo) UpdateChats(ctx context.Context, id string, chats []models.ChatMessage) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user id")
	}
	if chats == nil {
		chats = []models.ChatMessage{}
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"chats": chats, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}
