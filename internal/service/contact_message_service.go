package service

import (
	"context"
	"fmt"

	"github.com/gracehill/ministry/internal/domain"
	"github.com/gracehill/ministry/internal/repository"
)

type ContactMessageService struct {
	contactRepo repository.ContactMessageRepository
	notifier    Notifier
}

func NewContactMessageService(contactRepo repository.ContactMessageRepository) *ContactMessageService {
	return &ContactMessageService{contactRepo: contactRepo}
}

// SetNotifier sets the contact notifier (optional dependency).
func (s *ContactMessageService) SetNotifier(n Notifier) {
	s.notifier = n
}

type SubmitContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *ContactMessageService) Submit(ctx context.Context, input SubmitContactMessageInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating contact message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.ContactReceived(msg)
	}

	return msg, nil
}

func (s *ContactMessageService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}
