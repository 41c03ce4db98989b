package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"gamelibrary/middleware"
	"gamelibrary/realtime"
	"gamelibrary/routes"
	v1 "gamelibrary/routes/v1"
	"gamelibrary/services"
	"gamelibrary/tracing"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	systemMetricsInterval = 15 * time.Second
	shutdownTimeout       = 10 * time.Second
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the catalog and serve it to presentation clients over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	shutdownTracing, err := tracing.Setup(routes.ServiceName, a.cfg.TraceExporter)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			a.logger.Error("Failed to flush traces", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(a.logger)
	go hub.Run(ctx)

	notifier := services.Notifiers{hub, services.LogNotifier{Logger: a.logger}}
	games := services.NewCatalogStore(a.client, notifier, a.logger)
	categories := services.NewCategoryStore(a.client, a.logger)

	// Both loads report their own failures through the stores
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		games.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		categories.Load(ctx)
	}()
	wg.Wait()

	middleware.UpdateSystemMetrics(ctx, systemMetricsInterval)

	srv := &http.Server{
		Addr: a.cfg.ListenAddr,
		Handler: routes.NewRouter(v1.Dependencies{
			Config:     a.cfg,
			Games:      games,
			Categories: categories,
			Hub:        hub,
			Logger:     a.logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("Listening", "addr", a.cfg.ListenAddr, "catalog", a.cfg.CatalogURL, "games", games.Len())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
