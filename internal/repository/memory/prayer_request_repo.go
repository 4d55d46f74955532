package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gracehill/ministry/internal/domain"
)

type PrayerRequestRepo struct {
	mu       sync.RWMutex
	requests map[int]domain.PrayerRequest
	nextID   int
}

func NewPrayerRequestRepo() *PrayerRequestRepo {
	return &PrayerRequestRepo{
		requests: make(map[int]domain.PrayerRequest),
		nextID:   1,
	}
}

func (r *PrayerRequestRepo) Create(_ context.Context, req *domain.PrayerRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = r.nextID
	r.nextID++
	req.Status = domain.StatusPending
	req.CreatedAt = time.Now()
	r.requests[req.ID] = *req
	return nil
}

func (r *PrayerRequestRepo) List(_ context.Context) ([]domain.PrayerRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(domain.PrayerRequest) bool { return true }), nil
}

func (r *PrayerRequestRepo) ListPublicApproved(_ context.Context) ([]domain.PrayerRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(req domain.PrayerRequest) bool {
		return req.IsPublic && req.Status == domain.StatusApproved
	}), nil
}

func (r *PrayerRequestRepo) GetByID(_ context.Context, id int) (*domain.PrayerRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if req, ok := r.requests[id]; ok {
		return &req, nil
	}
	return nil, nil
}

func (r *PrayerRequestRepo) UpdateStatus(_ context.Context, id int, status string) (*domain.PrayerRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	req.Status = status
	r.requests[id] = req
	return &req, nil
}

// collect returns matching requests newest first. Caller must hold the lock.
func (r *PrayerRequestRepo) collect(match func(domain.PrayerRequest) bool) []domain.PrayerRequest {
	var requests []domain.PrayerRequest
	for _, req := range r.requests {
		if match(req) {
			requests = append(requests, req)
		}
	}

	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID > requests[j].ID
	})

	return requests
}
