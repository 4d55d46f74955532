package validator

import (
	"sort"
	"strings"

	"github.com/gracehill/ministry/internal/domain"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// Message flattens the field errors into a single line, fields in stable
// order.
func (v ValidationErrors) Message() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return strings.Join(parts, "; ")
}

func ValidatePrayerRequest(content string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(content) == "" {
		errs.Add("content", "Prayer request content is required")
	}

	return errs
}

func ValidateContactMessage(name, email, message string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(name) == "" {
		errs.Add("name", "Name is required")
	}
	if strings.TrimSpace(email) == "" {
		errs.Add("email", "Email is required")
	}
	if strings.TrimSpace(message) == "" {
		errs.Add("message", "Message is required")
	}

	return errs
}

// ValidateStatus accepts exactly the three moderation states, case-sensitive.
func ValidateStatus(status string) ValidationErrors {
	errs := make(ValidationErrors)

	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
	default:
		errs.Add("status", "Status must be pending, approved or rejected")
	}

	return errs
}
