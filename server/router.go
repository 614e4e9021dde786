package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"venues-server/metrics"
)

// VenueRoutes serves the browsing endpoints.
type VenueRoutes interface {
	GetVenues(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	GetFilterOptions(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// BookingRoutes serves the form submission endpoints.
type BookingRoutes interface {
	CreateBooking(w http.ResponseWriter, r *http.Request)
	CreateVenueRegistration(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler   VenueRoutes
	bookingHandler BookingRoutes
	metrics        *metrics.Metrics
	metricsPath    string
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes. With a nil m neither the
// metrics endpoint nor the metrics middleware is installed.
func NewRouter(
	venueHandler VenueRoutes,
	bookingHandler BookingRoutes,
	m *metrics.Metrics,
	metricsPath string,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:   venueHandler,
		bookingHandler: bookingHandler,
		metrics:        m,
		metricsPath:    metricsPath,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(accessLogMiddleware)
	if r.metrics != nil {
		r.router.Use(metricsMiddleware(r.metrics))
	}

	// expects ?q=&location=&sports=&price_range=&sort_by=&page=&limit=
	r.router.HandleFunc("/v1/venues", r.venueHandler.GetVenues).Methods("GET")
	// registered before {id} so "filters" is not taken as a venue id
	r.router.HandleFunc("/v1/venues/filters", r.venueHandler.GetFilterOptions).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")

	r.router.HandleFunc("/v1/bookings", r.bookingHandler.CreateBooking).Methods("POST")
	r.router.HandleFunc("/v1/venue-registrations", r.bookingHandler.CreateVenueRegistration).Methods("POST")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")

	if r.metrics != nil && r.metricsPath != "" {
		r.router.Handle(r.metricsPath, r.metrics.Handler()).Methods("GET")
	}

	// mux skips Use middleware when no route matches
	r.router.NotFoundHandler = r.unmatched(http.NotFoundHandler())
	r.router.MethodNotAllowedHandler = r.unmatched(http.HandlerFunc(methodNotAllowed))
}

func (r *Router) unmatched(h http.Handler) http.Handler {
	h = accessLogMiddleware(h)
	if r.metrics != nil {
		h = metricsMiddleware(r.metrics)(h)
	}
	return h
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
