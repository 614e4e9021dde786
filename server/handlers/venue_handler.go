package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"venues-server/dao/redis"
	"venues-server/models"
	services "venues-server/service"
)

const VENUE_ID_PATH_VAR = "id"

type VenueHandler struct {
	venueService *services.VenueService
}

func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// GetVenues handles GET /v1/venues
// expects ?q=&location=&sports=a,b&price_range=&sort_by=&page=&limit=
func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseVenueFilterParams(r.URL.Query(), h.venueService.PageLimit())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.venueService.QueryVenues(params)
	if err != nil {
		log.Printf("[VenueHandler] Error querying venues: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetVenue handles GET /v1/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[VENUE_ID_PATH_VAR]

	v, err := h.venueService.GetVenue(id)
	if err != nil {
		if errors.Is(err, redis.ErrVenueNotFound) {
			writeError(w, http.StatusNotFound, "venue not found: "+id)
			return
		}
		log.Printf("[VenueHandler] Error loading venue %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// GetFilterOptions handles GET /v1/venues/filters
func (h *VenueHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.venueService.FilterOptions())
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
