package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gracehill/ministry/internal/domain"
	"github.com/gracehill/ministry/internal/repository"
)

var ErrPrayerRequestNotFound = errors.New("prayer request not found")

// Notifier emits side-effect notifications after successful writes. The
// current implementation logs; delivery over email is intentionally out of
// scope.
type Notifier interface {
	FollowUpRequested(req *domain.PrayerRequest)
	ContactReceived(msg *domain.ContactMessage)
}

type PrayerRequestService struct {
	prayerRepo repository.PrayerRequestRepository
	notifier   Notifier
}

func NewPrayerRequestService(prayerRepo repository.PrayerRequestRepository) *PrayerRequestService {
	return &PrayerRequestService{prayerRepo: prayerRepo}
}

// SetNotifier sets the follow-up notifier (optional dependency).
func (s *PrayerRequestService) SetNotifier(n Notifier) {
	s.notifier = n
}

type SubmitPrayerRequestInput struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Content       string  `json:"content"`
	IsPublic      bool    `json:"isPublic"`
	NeedsFollowUp bool    `json:"needsFollowUp"`
}

func (s *PrayerRequestService) Submit(ctx context.Context, input SubmitPrayerRequestInput) (*domain.PrayerRequest, error) {
	req := &domain.PrayerRequest{
		Name:          input.Name,
		Email:         input.Email,
		Content:       input.Content,
		IsPublic:      input.IsPublic,
		NeedsFollowUp: input.NeedsFollowUp,
	}

	if err := s.prayerRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("creating prayer request: %w", err)
	}

	if s.notifier != nil && req.NeedsFollowUp && req.ContactEmail() != "" {
		s.notifier.FollowUpRequested(req)
	}

	return req, nil
}

func (s *PrayerRequestService) List(ctx context.Context) ([]domain.PrayerRequest, error) {
	return s.prayerRepo.List(ctx)
}

func (s *PrayerRequestService) ListPublic(ctx context.Context) ([]domain.PrayerRequest, error) {
	return s.prayerRepo.ListPublicApproved(ctx)
}

func (s *PrayerRequestService) Get(ctx context.Context, id int) (*domain.PrayerRequest, error) {
	req, err := s.prayerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrPrayerRequestNotFound
	}
	return req, nil
}

func (s *PrayerRequestService) UpdateStatus(ctx context.Context, id int, status string) (*domain.PrayerRequest, error) {
	req, err := s.prayerRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("updating prayer request status: %w", err)
	}
	if req == nil {
		return nil, ErrPrayerRequestNotFound
	}
	return req, nil
}
