package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venues-server/models"
)

func newTestSubmissionService(t *testing.T) *SubmissionService {
	ss := NewSubmissionService(NewVenueService(newSeededDAO(t), nil, nil, 10))
	ss.newReference = func() string { return "ref-1" }
	return ss
}

func validBooking() models.BookingRequest {
	return models.BookingRequest{
		VenueName:       "Elite Sports Complex",
		Sport:           "Tennis",
		Court:           "Court 2",
		Date:            "2026-11-02",
		StartTime:       "18:00",
		EndTime:         "19:30",
		NumberOfPlayers: 4,
	}
}

func validRegistration() models.VenueRegistrationRequest {
	return models.VenueRegistrationRequest{
		VenueName:     "Harbour Courts",
		BusinessName:  "Harbour Courts Ltd",
		Address:       "12 Pier Road",
		OwnerName:     "Sam Lee",
		ContactNumber: "+1 555 0100",
		Email:         "owner@harbourcourts.test",
		Sports:        []string{"Tennis"},
		Courts: []models.CourtRegistration{
			{Name: "Court 1", Sport: "Tennis", Capacity: "4", PricePerHour: "30"},
		},
	}
}

func TestSubmitBooking_Confirmed(t *testing.T) {
	ss := newTestSubmissionService(t)

	conf, err := ss.SubmitBooking(validBooking())

	require.NoError(t, err)
	assert.Equal(t, "ref-1", conf.Reference)
	assert.Equal(t, "Booking Confirmed!", conf.Title)
}

func TestSubmitBooking_MissingFields(t *testing.T) {
	ss := newTestSubmissionService(t)
	req := validBooking()
	req.Court = " "
	req.EndTime = ""
	req.NumberOfPlayers = 0

	_, err := ss.SubmitBooking(req)

	require.ErrorIs(t, err, ErrMissingFields)
	var subErr *SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, "Missing Information", subErr.Detail.Title)
	assert.Equal(t, []string{"court", "end_time", "number_of_players"}, subErr.Detail.MissingFields)
}

func TestSubmitBooking_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.BookingRequest)
		want   error
	}{
		{"bad date", func(r *models.BookingRequest) { r.Date = "02/11/2026" }, ErrInvalidFields},
		{"bad start", func(r *models.BookingRequest) { r.StartTime = "6pm" }, ErrInvalidFields},
		{"end before start", func(r *models.BookingRequest) { r.EndTime = "17:00" }, ErrInvalidFields},
		{"sport not offered", func(r *models.BookingRequest) { r.Sport = "Swimming" }, ErrInvalidFields},
		{"unknown venue", func(r *models.BookingRequest) { r.VenueName = "Nowhere Arena" }, ErrUnknownVenue},
	}

	ss := newTestSubmissionService(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := validBooking()
			test.modify(&req)

			conf, err := ss.SubmitBooking(req)

			assert.Nil(t, conf)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestSubmitRegistration_Confirmed(t *testing.T) {
	ss := newTestSubmissionService(t)

	conf, err := ss.SubmitRegistration(validRegistration())

	require.NoError(t, err)
	assert.Equal(t, "ref-1", conf.Reference)
	assert.Equal(t, "Venue Registered Successfully!", conf.Title)
}

func TestSubmitRegistration_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.VenueRegistrationRequest)
		want   error
		title  string
	}{
		{"missing owner", func(r *models.VenueRegistrationRequest) { r.OwnerName = "" }, ErrMissingFields, "Missing Information"},
		{"no sports", func(r *models.VenueRegistrationRequest) { r.Sports = []string{" "} }, ErrNoSports, "Sports Required"},
		{"no courts", func(r *models.VenueRegistrationRequest) { r.Courts = nil }, ErrIncompleteCourts, "Court Information Required"},
		{"incomplete court", func(r *models.VenueRegistrationRequest) {
			r.Courts = append(r.Courts, models.CourtRegistration{Name: "Court 2", Sport: "Tennis"})
		}, ErrIncompleteCourts, "Court Information Required"},
	}

	ss := newTestSubmissionService(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := validRegistration()
			test.modify(&req)

			_, err := ss.SubmitRegistration(req)

			require.ErrorIs(t, err, test.want)
			var subErr *SubmissionError
			require.True(t, errors.As(err, &subErr))
			assert.Equal(t, test.title, subErr.Detail.Title)
		})
	}
}
