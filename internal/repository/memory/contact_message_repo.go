package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gracehill/ministry/internal/domain"
)

type ContactMessageRepo struct {
	mu       sync.RWMutex
	messages map[int]domain.ContactMessage
	nextID   int
}

func NewContactMessageRepo() *ContactMessageRepo {
	return &ContactMessageRepo{
		messages: make(map[int]domain.ContactMessage),
		nextID:   1,
	}
}

func (r *ContactMessageRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = r.nextID
	r.nextID++
	msg.CreatedAt = time.Now()
	r.messages[msg.ID] = *msg
	return nil
}

func (r *ContactMessageRepo) List(_ context.Context) ([]domain.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var messages []domain.ContactMessage
	for _, msg := range r.messages {
		messages = append(messages, msg)
	}

	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].CreatedAt.After(messages[j].CreatedAt)
		}
		return messages[i].ID > messages[j].ID
	})

	return messages, nil
}
