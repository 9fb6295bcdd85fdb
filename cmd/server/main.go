package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/jusunglee/precinct-go/api/handlers"
	"github.com/jusunglee/precinct-go/internal/config"
	"github.com/jusunglee/precinct-go/internal/logging"
	"github.com/jusunglee/precinct-go/internal/sites"
	"github.com/jusunglee/precinct-go/internal/views"
	"github.com/jusunglee/precinct-go/pkg/directory"
)

func main() {
	config.LoadEnvFiles(".")
	cfg := config.Load()

	var (
		port         = flag.String("port", cfg.Port, "Server port")
		site         = flag.String("site", cfg.Site, "Site profile ("+strings.Join(sites.Keys(), ", ")+")")
		stationsFile = flag.String("stations-file", cfg.StationsFile, "Stations JSON file replacing the profile's dataset")
		logLevel     = flag.String("log-level", cfg.LogLevel, "Log level")
	)
	flag.Parse()

	logging.Init(*logLevel)
	defer logging.Sync()
	log := logging.Get()

	client, err := directory.NewLocal(directory.Config{
		Site:         *site,
		StationsFile: *stationsFile,
	})
	if err != nil {
		log.Fatalw("failed to load station directory", "error", err)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalw("failed to parse templates", "error", err)
	}

	// Create HTTP server
	r := mux.NewRouter()
	h := handlers.NewHandler(client, renderer, log)
	h.RegisterRoutes(r, cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// Add middleware
	r.Use(handlers.LoggingMiddleware(log))

	srv := &http.Server{
		Addr:         ":" + *port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// Start server
	g.Go(func() error {
		log.Infow("server starting", "port", *port, "site", client.Site().Key, "stations", client.Count())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown on interrupt or server failure
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalw("server stopped with error", "error", err)
	}

	log.Info("server stopped")
}
