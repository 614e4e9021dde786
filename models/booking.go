package models

// BookingRequest is the body of POST /v1/bookings. Payment is not taken here.
type BookingRequest struct {
	VenueName           string `json:"venue_name"`
	Sport               string `json:"sport"`
	Court               string `json:"court"`
	Date                string `json:"date"`       // YYYY-MM-DD
	StartTime           string `json:"start_time"` // HH:MM
	EndTime             string `json:"end_time"`
	NumberOfPlayers     int    `json:"number_of_players"`
	PlayerNames         string `json:"player_names,omitempty"`
	ContactNumber       string `json:"contact_number,omitempty"`
	Email               string `json:"email,omitempty"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

// CourtRegistration is one court/field row of a venue registration.
type CourtRegistration struct {
	Name         string `json:"name"`
	Sport        string `json:"sport"`
	Capacity     string `json:"capacity"`
	PricePerHour string `json:"price_per_hour"`
}

// VenueRegistrationRequest is the body of POST /v1/venue-registrations.
type VenueRegistrationRequest struct {
	VenueName     string              `json:"venue_name"`
	BusinessName  string              `json:"business_name"`
	Description   string              `json:"description,omitempty"`
	VenueType     string              `json:"venue_type,omitempty"`
	Address       string              `json:"address"`
	City          string              `json:"city,omitempty"`
	State         string              `json:"state,omitempty"`
	ZipCode       string              `json:"zip_code,omitempty"`
	Country       string              `json:"country,omitempty"`
	OwnerName     string              `json:"owner_name"`
	ContactNumber string              `json:"contact_number"`
	Email         string              `json:"email"`
	Website       string              `json:"website,omitempty"`
	Sports        []string            `json:"sports"`
	Courts        []CourtRegistration `json:"courts"`
}

// Confirmation is the notification returned for an accepted submission.
type Confirmation struct {
	Reference string `json:"reference"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

// ValidationError is returned when a submission is incomplete.
type ValidationError struct {
	Title         string   `json:"title"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missing_fields,omitempty"`
}
