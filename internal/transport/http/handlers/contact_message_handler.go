package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gracehill/ministry/internal/domain"
	"github.com/gracehill/ministry/internal/service"
	"github.com/gracehill/ministry/pkg/validator"
)

type ContactMessageHandler struct {
	contactService *service.ContactMessageService
}

func NewContactMessageHandler(contactService *service.ContactMessageService) *ContactMessageHandler {
	return &ContactMessageHandler{contactService: contactService}
}

func (h *ContactMessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitContactMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact message data")
		return
	}

	if errs := validator.ValidateContactMessage(input.Name, input.Email, input.Message); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "Invalid contact message data: "+errs.Message())
		return
	}

	msg, err := h.contactService.Submit(r.Context(), input)
	if err != nil {
		log.Printf("ERROR submit contact message: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save contact message")
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

func (h *ContactMessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list contact messages: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contact messages")
		return
	}

	if messages == nil {
		messages = []domain.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, messages)
}
