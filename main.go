package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/coreybb/studio/api"
	"github.com/coreybb/studio/catalog"
	"github.com/coreybb/studio/config"
	"github.com/coreybb/studio/datastore"
	"github.com/coreybb/studio/logging"
	rh "github.com/coreybb/studio/route-handlers"
)

const (
	defaultPort           = "8080"
	defaultAppEnv         = "dev"
	defaultLogLevel       = "info"
	defaultSessionTTL     = 30 * time.Minute
	defaultRequestTimeout = 60 * time.Second
	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 40
	shutdownTimeout       = 15 * time.Second
)

type appConfig struct {
	port           string
	logLevel       string
	seedFile       string
	sessionTTL     time.Duration
	requestTimeout time.Duration
	rateLimitRPS   float64
	rateLimitBurst int
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = defaultAppEnv
	}
	config.LoadEnv(env)

	cfg := loadConfig()
	logging.InitLogger(cfg.logLevel)

	seed, err := datastore.LoadSeed(cfg.seedFile)
	if err != nil {
		log.Fatalf("Catalog seed failed: %v", err)
	}
	slog.Info("Catalog seeded", "items", len(seed.Content), "categories", len(seed.Categories), "source", seedSource(cfg.seedFile))

	contentRepo := datastore.NewContentRepository(seed.Content)
	categoryRepo := datastore.NewCategoryRepository(seed.Categories)
	uploadRepo := datastore.NewUploadSessionRepository(cfg.sessionTTL, time.Now)

	catalogService := catalog.NewService(contentRepo)

	contentHandler := rh.NewContentHandler(catalogService)
	referenceHandler := rh.NewReferenceHandler(categoryRepo, time.Now)
	uploadHandler := rh.NewUploadHandler(uploadRepo, time.Now)

	var limiter *rate.Limiter
	if cfg.rateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.rateLimitRPS), cfg.rateLimitBurst)
	}

	apiRouter := api.SetupRoutes(contentHandler, referenceHandler, uploadHandler, api.Options{
		RequestTimeout: cfg.requestTimeout,
		Limiter:        limiter,
	})

	mainRouter := chi.NewRouter()
	mainRouter.Mount("/", apiRouter)

	startServer(cfg.port, mainRouter)
}

func loadConfig() appConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	return appConfig{
		port:           port,
		logLevel:       logLevel,
		seedFile:       os.Getenv("CATALOG_SEED_FILE"),
		sessionTTL:     durationEnv("UPLOAD_SESSION_TTL", defaultSessionTTL),
		requestTimeout: durationEnv("REQUEST_TIMEOUT", defaultRequestTimeout),
		rateLimitRPS:   floatEnv("RATE_LIMIT_RPS", defaultRateLimitRPS),
		rateLimitBurst: intEnv("RATE_LIMIT_BURST", defaultRateLimitBurst),
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("WARNING: %s=%q is not a positive duration, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		log.Printf("WARNING: %s=%q is not a non-negative number, using %v", key, raw, fallback)
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		log.Printf("WARNING: %s=%q is not a positive integer, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func seedSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func startServer(port string, router http.Handler) {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownSignal // Block until signal received
	slog.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	slog.Info("Server gracefully stopped")
}
