package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalModel is one free-form journal entry.
type JournalModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId"        json:"userId"`
	Content   string             `bson:"content"       json:"content"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
