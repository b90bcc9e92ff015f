package mood

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mindhaven/core/internal/models"
	"github.com/mindhaven/core/internal/modules/ai"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const chatContextMaxRunes = 100

// Store is the persistence surface the mood service needs.
type Store interface {
	Create(ctx context.Context, entry *models.MoodModel) error
	ListByUser(ctx context.Context, userID string) ([]models.MoodModel, error)
}

type Service struct {
	store Store
	ai    ai.Client
}

func NewService(store Store, client ai.Client) *Service {
	return &Service{store: store, ai: client}
}

// Analyze derives a sentiment entry from a chat conversation. Malformed
// provider output is an explicit error; nothing is stored in that case.
func (s *Service) Analyze(ctx context.Context, userID string, dto *AnalyzeDTO) (ai.Sentiment, *models.MoodModel, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ai.Sentiment{}, nil, errors.New("invalid user id")
	}

	var lines []string
	for _, turn := range dto.Messages {
		lines = append(lines, turn.Role+": "+turn.Content)
	}
	text := strings.Join(lines, "\n")

	sentiment, err := ai.AnalyzeSentiment(ctx, s.ai, text)
	if err != nil {
		return ai.Sentiment{}, nil, err
	}

	entry := &models.MoodModel{
		UserID:    oid,
		Mood:      sentiment.Mood,
		Sentiment: sentiment.Score,
		Notes: fmt.Sprintf("Chat conversation analysis (%s - %s)",
			formatWindowTime(dto.StartTime), formatWindowTime(dto.EndTime)),
		ChatContext: excerpt(text, chatContextMaxRunes),
		Date:        time.Now(),
	}
	if err := s.store.Create(ctx, entry); err != nil {
		return ai.Sentiment{}, nil, err
	}
	return sentiment, entry, nil
}

// Create stores a user-supplied mood entry as-is; no derivation happens here.
func (s *Service) Create(ctx context.Context, userID string, dto *CreateDTO) (*models.MoodModel, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}
	entry := &models.MoodModel{
		UserID:      oid,
		Mood:        strings.TrimSpace(dto.Mood),
		Sentiment:   *dto.Sentiment,
		Notes:       dto.Notes,
		ChatContext: dto.ChatContext,
		Date:        time.Now(),
	}
	if err := s.store.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// History returns the caller's mood entries, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]models.MoodModel, error) {
	return s.store.ListByUser(ctx, userID)
}

// formatWindowTime renders a client-supplied timestamp as a local clock time,
// falling back to the raw string when it is not RFC 3339.
func formatWindowTime(raw string) string {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Local().Format("15:04:05")
	}
	return raw
}

func excerpt(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "..."
}
