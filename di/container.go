package di

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/mux"

	"venues-server/api"
	"venues-server/api/catalog"
	"venues-server/config"
	"venues-server/dao/redis"
	"venues-server/db"
	"venues-server/metrics"
	"venues-server/server"
	"venues-server/server/handlers"
	services "venues-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	Metrics                 *metrics.Metrics
	RedisClient             db.RedisClient
	RedisVenueDao           *redis.RedisVenueDAO
	CatalogAPI              catalog.CatalogAPI
	VenueService            *services.VenueService
	SubmissionService       *services.SubmissionService
	CatalogRefresherService *services.CatalogRefresherService
	VenueHandler            *handlers.VenueHandler
	BookingHandler          *handlers.BookingHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	VenuesHttpServer        *server.VenuesHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - catalog source: %s", cfg.Catalog.Source)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	// Initialize Redis client; without an address the catalog is cached in memory
	var redisClient db.RedisClient
	if cfg.Redis.Addr == "" {
		log.Printf("Using in-memory catalog cache")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		client, err := db.NewGoRedisClientFromOptions(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		redisClient = client
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	var catalogAPI catalog.CatalogAPI
	if cfg.Catalog.Source == config.CATALOG_SOURCE_API {
		log.Printf("Using catalog api at %s", cfg.Catalog.APIURL)
		httpClient := api.NewHTTPClientWithTimeout(cfg.Catalog.APIURL, time.Duration(cfg.Catalog.APITimeout)*time.Second)
		catalogAPI = catalog.NewCatalogApiClient(httpClient)
	} else {
		log.Printf("Using catalog file %s", cfg.Catalog.File)
		catalogAPI = catalog.NewCatalogApiClientMock(cfg.Catalog.File)
	}

	venueService := services.NewVenueService(redisVenueDao, catalogAPI, m, cfg.Listing.PageLimit)
	submissionService := services.NewSubmissionService(venueService)
	refresher := services.NewCatalogRefresherService(redisVenueDao, catalogAPI, m)

	venueHandler := handlers.NewVenueHandler(venueService)
	bookingHandler := handlers.NewBookingHandler(submissionService)

	muxRouter := mux.NewRouter()
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	router := server.NewRouter(venueHandler, bookingHandler, m, metricsPath, muxRouter)
	httpServer := server.NewVenuesHttpServer(router, muxRouter, cfg.Server)

	return &Container{
		Config:                  cfg,
		Metrics:                 m,
		RedisClient:             redisClient,
		RedisVenueDao:           redisVenueDao,
		CatalogAPI:              catalogAPI,
		VenueService:            venueService,
		SubmissionService:       submissionService,
		CatalogRefresherService: refresher,
		VenueHandler:            venueHandler,
		BookingHandler:          bookingHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		VenuesHttpServer:        httpServer,
	}, nil
}
