package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"venues-server/models"
	services "venues-server/service"
)

// BookingHandler accepts the booking and venue registration forms.
type BookingHandler struct {
	submissionService *services.SubmissionService
}

func NewBookingHandler(submissionService *services.SubmissionService) *BookingHandler {
	return &BookingHandler{submissionService: submissionService}
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid booking request body")
		return
	}

	conf, err := h.submissionService.SubmitBooking(req)
	if err != nil {
		h.writeSubmissionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conf)
}

// CreateVenueRegistration handles POST /v1/venue-registrations
func (h *BookingHandler) CreateVenueRegistration(w http.ResponseWriter, r *http.Request) {
	var req models.VenueRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid registration request body")
		return
	}

	conf, err := h.submissionService.SubmitRegistration(req)
	if err != nil {
		h.writeSubmissionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conf)
}

func (h *BookingHandler) writeSubmissionError(w http.ResponseWriter, err error) {
	var subErr *services.SubmissionError
	if !errors.As(err, &subErr) {
		log.Printf("[BookingHandler] Submission failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("[BookingHandler] Submission rejected: %v", err)
	status := http.StatusBadRequest
	if errors.Is(err, services.ErrUnknownVenue) {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, subErr.Detail)
}
