package user

import (
	"context"
	"strings"

	"github.com/mindhaven/core/internal/database"
	"github.com/mindhaven/core/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Store is the persistence surface the user service needs.
type Store interface {
	GetByID(ctx context.Context, id string) (*models.UserModel, error)
	GetByEmail(ctx context.Context, email string) (*models.UserModel, error)
	Create(ctx context.Context, u *models.UserModel) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

// Signup creates a new account. A taken email is rejected; the unique index
// on email backs the check against concurrent signups.
func (s *Service) Signup(ctx context.Context, dto *SignupDTO) (*models.UserModel, error) {
	email := normalizeEmail(dto.Email)

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.UserModel{
		Name:     strings.TrimSpace(dto.Name),
		Email:    email,
		Password: string(hash),
		Chats:    []models.ChatMessage{},
	}
	if err := s.store.Create(ctx, u); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, errEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login verifies the password for the given email.
func (s *Service) Login(ctx context.Context, email, password string) (*models.UserModel, error) {
	u, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, errWrongPassword
	}
	return u, nil
}

// GetByID loads the user behind an authenticated request.
func (s *Service) GetByID(ctx context.Context, id string) (*models.UserModel, error) {
	return s.store.GetByID(ctx, id)
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
