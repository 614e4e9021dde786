package cmd

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"venues-server/config"
	"venues-server/di"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the periodic catalog refresher",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			container, err := di.NewContainer(ctx, cfg)
			if err != nil {
				return err
			}
			if closer, ok := container.RedisClient.(io.Closer); ok {
				defer closer.Close()
			}

			// a failed first load keeps whatever the cache already holds
			if _, err := container.CatalogRefresherService.RefreshCatalog(ctx); err != nil {
				log.Printf("[serve] Initial catalog refresh failed: %v", err)
			}
			if minutes := cfg.Catalog.RefreshScheduleMinutes; minutes > 0 {
				container.CatalogRefresherService.StartPeriodicJob(ctx, time.Duration(minutes)*time.Minute)
			}

			return container.VenuesHttpServer.Start(ctx)
		},
	}
}
