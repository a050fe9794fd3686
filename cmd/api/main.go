// ABOUTME: Main entry point for the OpenMedia API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"openmedia-app-api/api"
	"openmedia-app-api/api/handlers"
	"openmedia-app-api/core/interfaces"
	"openmedia-app-api/core/results"
	"openmedia-app-api/core/search"
	"openmedia-app-api/core/services"
	"openmedia-app-api/core/workers"
	"openmedia-app-api/infrastructure/cache/memory"
	"openmedia-app-api/infrastructure/cache/redis"
	"openmedia-app-api/infrastructure/cache/sqlite"
	"openmedia-app-api/infrastructure/http/ratelimited"
	logruslog "openmedia-app-api/infrastructure/logger/logrus"
	"openmedia-app-api/pkg/config"
	"openmedia-app-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslog.NewLogger()
	flags := featureflags.NewEnvManager()

	logger.Info("Starting OpenMedia API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"provider":   cfg.Provider.BaseURL,
	})

	// Create cache; an enriched document store rides along when Redis
	// is available
	var cache interfaces.Cache
	var documents interfaces.DocumentStore

	if !flags.IsEnabled(featureflags.CacheEnabled) {
		logger.Warn("Caching disabled by feature flag, using short-lived memory cache", nil)
		cache = memory.NewMemoryCache(time.Minute)
	} else {
		switch cfg.Cache.Type {
		case "redis":
			redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
			if err != nil {
				logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
					"error": err.Error(),
				})
				cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
			} else {
				cache = redisCache
				documents = redis.NewDocumentStore(redisCache, "media")
				logger.Info("Using Redis cache", map[string]interface{}{
					"address": cfg.Cache.Redis.Address,
				})
			}
		case "sqlite":
			sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLite.Path, logger)
			if err != nil {
				logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
					"error": err.Error(),
				})
				cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
			} else {
				cache = sqliteCache
				logger.Info("Using SQLite cache", map[string]interface{}{
					"path": cfg.Cache.SQLite.Path,
				})
			}
		default:
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
			logger.Info("Using memory cache", nil)
		}
	}

	// Create rate limited HTTP client for provider traffic
	httpClient := ratelimited.NewClient(
		time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
		cfg.Provider.RequestsPerSecond,
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the result store and services
	store := results.NewStore()
	searchService := search.NewSearchService(deps, store, cfg.Provider.BaseURL)

	enrichmentService := services.NewMediaEnrichmentService(deps, 24*time.Hour)
	if documents != nil {
		enrichmentService = enrichmentService.WithDocumentStore(documents)
	}

	// Background enrichment workers, gated on a feature flag
	var enricher handlers.Enricher
	var enrichmentWorker *workers.EnrichmentWorker
	if flags.IsEnabled(featureflags.EnrichmentEnabled) {
		enrichmentWorker = workers.NewEnrichmentWorker(enrichmentService, workers.DefaultWorkerConfig())
		if err := enrichmentWorker.Start(); err != nil {
			log.Fatalf("Failed to start enrichment workers: %v", err)
		}
		enricher = enrichmentWorker
	} else {
		logger.Info("Enrichment disabled by feature flag", nil)
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
		Flags:      flags,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	searchHandler := handlers.NewSearchHandler(searchService, enrichmentService, enricher)
	searchHandler.RegisterRoutes(humaAPI)

	mediaHandler := handlers.NewMediaHandler(store, enrichmentService, flags)
	mediaHandler.RegisterRoutes(humaAPI)

	metadataHandler := handlers.NewMetadataHandler(enrichmentService)
	metadataHandler.RegisterRoutes(humaAPI)

	validateHandler := handlers.NewValidateHandler(httpClient)
	validateHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(httpClient, cfg.Provider.BaseURL)
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if enrichmentWorker != nil {
		if err := enrichmentWorker.Stop(); err != nil {
			logger.Warn("Enrichment workers did not stop cleanly", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}
