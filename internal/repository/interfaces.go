package repository

import (
	"context"

	"github.com/gracehill/ministry/internal/domain"
)

// Lookup methods return (nil, nil) when no record matches; absence is a
// normal result, not an error.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type PrayerRequestRepository interface {
	// Create assigns the id, sets status to pending and stamps createdAt.
	// Caller-supplied values for those fields are ignored.
	Create(ctx context.Context, req *domain.PrayerRequest) error
	List(ctx context.Context) ([]domain.PrayerRequest, error)
	ListPublicApproved(ctx context.Context) ([]domain.PrayerRequest, error)
	GetByID(ctx context.Context, id int) (*domain.PrayerRequest, error)
	// UpdateStatus changes only the status field and returns the updated
	// record, or (nil, nil) when the id is unknown.
	UpdateStatus(ctx context.Context, id int, status string) (*domain.PrayerRequest, error)
}

type ContactMessageRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
}
