package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"venues-server/dao/redis"
	"venues-server/models"
)

const (
	DATE_LAYOUT = "2006-01-02"
	TIME_LAYOUT = "15:04"
)

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidFields    = errors.New("invalid field values")
	ErrNoSports         = errors.New("at least one sport is required")
	ErrIncompleteCourts = errors.New("court information is incomplete")
	ErrUnknownVenue     = errors.New("unknown venue")
)

// SubmissionError is a rejected form submission together with the message
// shown to the submitter.
type SubmissionError struct {
	Err    error
	Detail models.ValidationError
}

func (e *SubmissionError) Error() string {
	if len(e.Detail.MissingFields) > 0 {
		return fmt.Sprintf("%v: %s", e.Err, strings.Join(e.Detail.MissingFields, ", "))
	}
	return e.Err.Error()
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// SubmissionService validates booking requests and venue registrations.
// Nothing is stored; an accepted submission only yields a confirmation.
type SubmissionService struct {
	venueService *VenueService
	newReference func() string
}

func NewSubmissionService(venueService *VenueService) *SubmissionService {
	return &SubmissionService{
		venueService: venueService,
		newReference: uuid.NewString,
	}
}

// SubmitBooking checks the required booking details and that the venue is
// in the catalog.
func (ss *SubmissionService) SubmitBooking(req models.BookingRequest) (*models.Confirmation, error) {
	var missing []string
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	require("venue_name", req.VenueName)
	require("sport", req.Sport)
	require("court", req.Court)
	require("date", req.Date)
	require("start_time", req.StartTime)
	require("end_time", req.EndTime)
	if req.NumberOfPlayers <= 0 {
		missing = append(missing, "number_of_players")
	}
	if len(missing) > 0 {
		return nil, &SubmissionError{
			Err: ErrMissingFields,
			Detail: models.ValidationError{
				Title:         "Missing Information",
				Message:       "Please fill in all required booking details.",
				MissingFields: missing,
			},
		}
	}

	if err := validateSlot(req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, &SubmissionError{
			Err: fmt.Errorf("%w: %v", ErrInvalidFields, err),
			Detail: models.ValidationError{
				Title:   "Invalid Booking Time",
				Message: err.Error(),
			},
		}
	}

	v, err := ss.venueService.FindVenueByName(req.VenueName)
	if err != nil {
		if !errors.Is(err, redis.ErrVenueNotFound) {
			return nil, err
		}
		return nil, &SubmissionError{
			Err: fmt.Errorf("%w: %s", ErrUnknownVenue, req.VenueName),
			Detail: models.ValidationError{
				Title:   "Unknown Venue",
				Message: fmt.Sprintf("No venue named %q is listed.", req.VenueName),
			},
		}
	}
	if !v.OffersSport(req.Sport) {
		return nil, &SubmissionError{
			Err: fmt.Errorf("%w: %s does not offer %s", ErrInvalidFields, v.Name, req.Sport),
			Detail: models.ValidationError{
				Title:   "Sport Not Offered",
				Message: fmt.Sprintf("%s does not offer %s.", v.Name, req.Sport),
			},
		}
	}

	ref := ss.newReference()
	log.Printf("[SubmissionService] Booking %s accepted for venue %s on %s %s-%s", ref, v.ID, req.Date, req.StartTime, req.EndTime)
	return &models.Confirmation{
		Reference: ref,
		Title:     "Booking Confirmed!",
		Message:   "Your venue has been booked successfully. A confirmation will be sent to your email.",
	}, nil
}

func validateSlot(date, start, end string) error {
	if _, err := time.Parse(DATE_LAYOUT, date); err != nil {
		return fmt.Errorf("date %q is not in YYYY-MM-DD format", date)
	}
	from, err := time.Parse(TIME_LAYOUT, start)
	if err != nil {
		return fmt.Errorf("start time %q is not in HH:MM format", start)
	}
	to, err := time.Parse(TIME_LAYOUT, end)
	if err != nil {
		return fmt.Errorf("end time %q is not in HH:MM format", end)
	}
	if !to.After(from) {
		return fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return nil
}

// SubmitRegistration checks the owner, contact and court details of a venue
// registration.
func (ss *SubmissionService) SubmitRegistration(req models.VenueRegistrationRequest) (*models.Confirmation, error) {
	var missing []string
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	require("venue_name", req.VenueName)
	require("business_name", req.BusinessName)
	require("address", req.Address)
	require("owner_name", req.OwnerName)
	require("contact_number", req.ContactNumber)
	require("email", req.Email)
	if len(missing) > 0 {
		return nil, &SubmissionError{
			Err: ErrMissingFields,
			Detail: models.ValidationError{
				Title:         "Missing Information",
				Message:       "Please fill in all required fields.",
				MissingFields: missing,
			},
		}
	}

	sports := 0
	for _, s := range req.Sports {
		if strings.TrimSpace(s) != "" {
			sports++
		}
	}
	if sports == 0 {
		return nil, &SubmissionError{
			Err: ErrNoSports,
			Detail: models.ValidationError{
				Title:   "Sports Required",
				Message: "Please select at least one sport offered at your venue.",
			},
		}
	}

	if len(req.Courts) == 0 || !courtsComplete(req.Courts) {
		return nil, &SubmissionError{
			Err: ErrIncompleteCourts,
			Detail: models.ValidationError{
				Title:   "Court Information Required",
				Message: "Please complete all court/field information.",
			},
		}
	}

	ref := ss.newReference()
	log.Printf("[SubmissionService] Registration %s received for venue %q (%d courts)", ref, req.VenueName, len(req.Courts))
	return &models.Confirmation{
		Reference: ref,
		Title:     "Venue Registered Successfully!",
		Message:   "Your venue has been submitted for review. You'll receive a confirmation email within 24 hours.",
	}, nil
}

func courtsComplete(courts []models.CourtRegistration) bool {
	for _, c := range courts {
		if strings.TrimSpace(c.Name) == "" ||
			strings.TrimSpace(c.Sport) == "" ||
			strings.TrimSpace(c.Capacity) == "" ||
			strings.TrimSpace(c.PricePerHour) == "" {
			return false
		}
	}
	return true
}
