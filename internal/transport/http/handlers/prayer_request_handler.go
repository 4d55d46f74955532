package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gracehill/ministry/internal/domain"
	"github.com/gracehill/ministry/internal/service"
	"github.com/gracehill/ministry/pkg/validator"
)

type PrayerRequestHandler struct {
	prayerService *service.PrayerRequestService
}

func NewPrayerRequestHandler(prayerService *service.PrayerRequestService) *PrayerRequestHandler {
	return &PrayerRequestHandler{prayerService: prayerService}
}

func (h *PrayerRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitPrayerRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid prayer request data")
		return
	}

	if errs := validator.ValidatePrayerRequest(input.Content); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "Invalid prayer request data: "+errs.Message())
		return
	}

	req, err := h.prayerService.Submit(r.Context(), input)
	if err != nil {
		log.Printf("ERROR submit prayer request: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save prayer request")
		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (h *PrayerRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.prayerService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list prayer requests: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch prayer requests")
		return
	}

	if requests == nil {
		requests = []domain.PrayerRequest{}
	}

	writeJSON(w, http.StatusOK, requests)
}

func (h *PrayerRequestHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	requests, err := h.prayerService.ListPublic(r.Context())
	if err != nil {
		log.Printf("ERROR list public prayer requests: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch public prayer requests")
		return
	}

	if requests == nil {
		requests = []domain.PrayerRequest{}
	}

	writeJSON(w, http.StatusOK, requests)
}

func (h *PrayerRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	// A non-numeric id cannot match any record, so it reads as not found
	// rather than a malformed request.
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Prayer request not found")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid status update data")
		return
	}

	if errs := validator.ValidateStatus(input.Status); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "Invalid status update data: "+errs.Message())
		return
	}

	req, err := h.prayerService.UpdateStatus(r.Context(), id, input.Status)
	if err != nil {
		if errors.Is(err, service.ErrPrayerRequestNotFound) {
			writeError(w, http.StatusNotFound, "Prayer request not found")
			return
		}
		log.Printf("ERROR update prayer request status: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update prayer request")
		return
	}

	writeJSON(w, http.StatusOK, req)
}
