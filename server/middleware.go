package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"venues-server/metrics"
)

// UNMATCHED_ROUTE labels requests answered with 404 or 405.
const UNMATCHED_ROUTE = "unmatched"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[HTTP] %s %s %d %v", r.Method, r.URL.RequestURI(), rec.status, time.Since(start))
	})
}

// metricsMiddleware labels requests with the matched route template so that
// /v1/venues/1 and /v1/venues/2 share one series.
func metricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := UNMATCHED_ROUTE
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			m.ObserveHTTPRequest(route, r.Method, rec.status, time.Since(start))
		})
	}
}
