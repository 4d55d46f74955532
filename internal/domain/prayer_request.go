package domain

import (
	"time"
)

// Moderation states of a prayer request. Any of the three may be set at any
// time; re-review of an already moderated request is allowed.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type PrayerRequest struct {
	ID            int       `json:"id"`
	Name          *string   `json:"name"`
	Email         *string   `json:"email"`
	Content       string    `json:"content"`
	IsPublic      bool      `json:"isPublic"`
	NeedsFollowUp bool      `json:"needsFollowUp"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ContactEmail returns the submitter's email, or "" for anonymous requests.
func (p *PrayerRequest) ContactEmail() string {
	if p.Email == nil {
		return ""
	}
	return *p.Email
}
