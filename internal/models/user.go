package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat roles as stored in the user document.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of the stored conversation.
type ChatMessage struct {
	ID      string `bson:"id"      json:"id"`
	Role    string `bson:"role"    json:"role"`
	Content string `bson:"content" json:"content"`
}

// UserModel is an account document. The chat list lives embedded in the user
// document and is append-only except for a full clear.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"          json:"name"`
	Email     string             `bson:"email"         json:"email"`
	Password  string             `bson:"password"      json:"-"`
	Chats     []ChatMessage      `bson:"chats"         json:"chats"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}
