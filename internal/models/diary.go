package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiaryModel is one diary entry. Entries are created and listed, never updated.
type DiaryModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId"        json:"userId"`
	Title     string             `bson:"title"         json:"title"`
	Content   string             `bson:"content"       json:"content"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
