package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venues-server/config"
	"venues-server/metrics"
)

func TestVenuesHttpServer_Handler(t *testing.T) {
	muxRouter := mux.NewRouter()
	router := NewRouter(&MockVenueHandler{}, &MockBookingHandler{}, nil, "", muxRouter)
	srv := NewVenuesHttpServer(router, muxRouter, config.Default().Server)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestVenuesHttpServer_HandlerRegistersRoutesOnce(t *testing.T) {
	m := metrics.New("test")
	muxRouter := mux.NewRouter()
	router := NewRouter(&MockVenueHandler{}, &MockBookingHandler{}, m, "/metrics", muxRouter)
	srv := NewVenuesHttpServer(router, muxRouter, config.Default().Server)

	first := srv.Handler()
	second := srv.Handler()
	assert.Same(t, first, second)

	second.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	rr := httptest.NewRecorder()
	second.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(), `test_http_requests_total{code="200",method="GET",route="/ping"} 1`)
}

func TestVenuesHttpServer_StartStopsOnCancel(t *testing.T) {
	muxRouter := mux.NewRouter()
	router := NewRouter(&MockVenueHandler{}, &MockBookingHandler{}, nil, "", muxRouter)
	cfg := config.Default().Server
	cfg.HTTPPort = 0
	srv := NewVenuesHttpServer(router, muxRouter, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
