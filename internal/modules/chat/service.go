package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mindhaven/core/internal/models"
	"github.com/mindhaven/core/internal/modules/ai"
)

// UserStore is the slice of user persistence the chat service needs. The chat
// list lives embedded in the user document.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.UserModel, error)
	UpdateChats(ctx context.Context, id string, chats []models.ChatMessage) error
}

type Service struct {
	store UserStore
	ai    ai.Client
}

func NewService(store UserStore, client ai.Client) *Service {
	return &Service{store: store, ai: client}
}

// Send appends the user turn and the assistant reply in a single persist.
// When the provider call fails nothing is stored, so the chat list grows by
// exactly two turns or not at all.
func (s *Service) Send(ctx context.Context, userID, message string) ([]models.ChatMessage, error) {
	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errUserNotFound
	}

	reply, err := s.ai.GenerateText(ctx, buildPrompt(u.Chats, message))
	if err != nil {
		return nil, err
	}

	chats := make([]models.ChatMessage, 0, len(u.Chats)+2)
	chats = append(chats, u.Chats...)
	chats = append(chats,
		models.ChatMessage{ID: uuid.NewString(), Role: models.RoleUser, Content: message},
		models.ChatMessage{ID: uuid.NewString(), Role: models.RoleAssistant, Content: reply},
	)
	if err := s.store.UpdateChats(ctx, userID, chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// List returns the stored chat list, seeding the greeting when it is empty.
func (s *Service) List(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errUserNotFound
	}
	if len(u.Chats) > 0 {
		return u.Chats, nil
	}

	seeded := []models.ChatMessage{greeting()}
	if err := s.store.UpdateChats(ctx, userID, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// Clear truncates the chat list back to the single greeting.
func (s *Service) Clear(ctx context.Context, userID string) error {
	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return errUserNotFound
	}
	return s.store.UpdateChats(ctx, userID, []models.ChatMessage{greeting()})
}

func greeting() models.ChatMessage {
	return models.ChatMessage{ID: uuid.NewString(), Role: models.RoleAssistant, Content: InitialGreeting}
}

// buildPrompt flattens the persona preamble, the serialized history and the
// new message into the single prompt the provider receives.
func buildPrompt(history []models.ChatMessage, message string) string {
	var b strings.Builder
	b.WriteString(personaPreamble)
	b.WriteString("\n\nConversation history:\n")
	for _, turn := range history {
		if turn.Role == models.RoleUser {
			b.WriteString("Human: ")
		} else {
			b.WriteString("Assistant: ")
		}
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	b.WriteString("\nHuman: ")
	b.WriteString(message)
	b.WriteString("\nAssistant:")
	return b.String()
}
