package chat

import "errors"

// InitialGreeting seeds an empty chat list and is what a clear resets to.
const InitialGreeting = "Hi there! 👋 I'm your friendly AI companion. How are you feeling today? I'd love to hear about your day!"

const personaPreamble = `You are a caring and empathetic friend who wants to help.
If the user expresses negative emotions or problems, show genuine concern and offer practical advice.
If they're happy, share their joy and encourage them to elaborate.
Keep the conversation natural and supportive.`

var errUserNotFound = errors.New("user not found")

// NewMessageDTO is the request body for POST /chat/new.
type NewMessageDTO struct {
	Message string `json:"message" binding:"required"`
}
