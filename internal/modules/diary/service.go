package diary

import (
	"context"
	"errors"

	"github.com/mindhaven/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the diary service needs.
type Store interface {
	Create(ctx context.Context, entry *models.DiaryModel) error
	ListByUser(ctx context.Context, userID string) ([]models.DiaryModel, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

// Create stores one diary entry. Title and content arrive already trimmed.
func (s *Service) Create(ctx context.Context, userID, title, content string) (*models.DiaryModel, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}
	entry := &models.DiaryModel{UserID: oid, Title: title, Content: content}
	if err := s.store.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the caller's entries, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.DiaryModel, error) {
	return s.store.ListByUser(ctx, userID)
}
