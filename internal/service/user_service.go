package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gracehill/ministry/internal/domain"
	"github.com/gracehill/ministry/internal/repository"
)

var ErrUsernameTaken = errors.New("username already taken")

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user. Username uniqueness is checked here so every
// storage backend behaves the same; the postgres schema additionally
// carries a UNIQUE constraint.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	user := &domain.User{
		Username: input.Username,
		Password: input.Password,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}
