package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"venues-server/config"
)

type VenuesHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	cfg       config.ServerConfig
	routes    sync.Once
}

func NewVenuesHttpServer(router *Router, muxRouter *mux.Router, cfg config.ServerConfig) *VenuesHttpServer {
	return &VenuesHttpServer{
		router:    router,
		muxRouter: muxRouter,
		cfg:       cfg,
	}
}

// Handler registers the routes on first use and returns the root handler.
func (s *VenuesHttpServer) Handler() http.Handler {
	s.routes.Do(s.router.RegisterRoutes)
	return s.muxRouter
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *VenuesHttpServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.HTTPPort),
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[VenuesHttpServer] Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ListenAndServe(): %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[VenuesHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Println("[VenuesHttpServer] Server exiting")
	return nil
}
