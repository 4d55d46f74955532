// Package notify implements service.Notifier by writing structured lines to
// the process log. Each event carries a uuid so follow-ups can be correlated
// if a real delivery channel is added later.
package notify

import (
	"log"

	"github.com/google/uuid"

	"github.com/gracehill/ministry/internal/domain"
)

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) FollowUpRequested(req *domain.PrayerRequest) {
	log.Printf("notify: event=%s follow-up requested for prayer request %d (%s)",
		uuid.New(), req.ID, req.ContactEmail())
}

func (n *LogNotifier) ContactReceived(msg *domain.ContactMessage) {
	log.Printf("notify: event=%s contact message %d received from %s",
		uuid.New(), msg.ID, msg.Email)
}
