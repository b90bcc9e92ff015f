package journal

import (
	"context"
	"errors"

	"github.com/mindhaven/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the journal service needs.
type Store interface {
	Create(ctx context.Context, entry *models.JournalModel) error
	ListByUser(ctx context.Context, userID string) ([]models.JournalModel, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

// Create stores one journal entry. Content arrives already trimmed.
func (s *Service) Create(ctx context.Context, userID, content string) (*models.JournalModel, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}
	entry := &models.JournalModel{UserID: oid, Content: content}
	if err := s.store.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the caller's entries, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.JournalModel, error) {
	return s.store.ListByUser(ctx, userID)
}
