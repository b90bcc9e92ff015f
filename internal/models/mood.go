package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodModel is a sentiment entry, recorded directly by the user or derived
// from a chat conversation by the analyzer.
type MoodModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId"        json:"userId"`
	Mood        string             `bson:"mood"          json:"mood"`
	Sentiment   float64            `bson:"sentiment"     json:"sentiment"` // [0,1], 1 = most positive
	Notes       string             `bson:"notes"         json:"notes"`
	ChatContext string             `bson:"chatContext,omitempty" json:"chatContext,omitempty"`
	Date        time.Time          `bson:"date"          json:"date"`
}
