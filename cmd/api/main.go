package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"velora-backend/config"
	"velora-backend/internal/delivery/http/middleware"
	v1 "velora-backend/internal/delivery/http/v1"
	"velora-backend/internal/infrastructure/cache"
	"velora-backend/internal/repository/pgrepo"
	"velora-backend/internal/usecase"
	"velora-backend/pkg/logger"

	"github.com/NYTimes/gziphandler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Initialize Database
	pgxPool, err := pgrepo.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Successfully connected to PostgreSQL via pgx")

	// Initialize Repositories
	productRepo := pgrepo.NewProductRepository(pgxPool)
	searchRepo := pgrepo.NewSearchRepository(pgxPool)

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(productRepo, memCache, cfg)
	catalogHandler := v1.NewCatalogHandler(catalogUC)
	adminCatalogHandler := v1.NewAdminCatalogHandler(catalogUC)

	// Search Module
	searchUC := usecase.NewSearchUsecase(searchRepo, cfg.SearchTimeout)
	searchHandler := v1.NewSearchHandler(searchUC)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/search", searchHandler.Search)
	mux.HandleFunc("GET /api/v1/search/suggestions", searchHandler.Suggestions)

	// Admin Product Management (authentication terminates at the gateway)
	mux.HandleFunc("POST /api/v1/admin/products", adminCatalogHandler.CreateProduct)
	mux.HandleFunc("PUT /api/v1/admin/products/{id}", adminCatalogHandler.UpdateProduct)
	mux.HandleFunc("PATCH /api/v1/admin/products/{id}/status", adminCatalogHandler.UpdateProductStatus)
	mux.HandleFunc("DELETE /api/v1/admin/products/{id}", adminCatalogHandler.DeleteProduct)

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "db": "connected"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitPerSecond),
		cfg.RateLimitBurst,
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Request Logger, Metrics, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = middleware.NewMetricsMiddleware(mux)(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	// Stop rate limiter cleanup goroutine before the listener drains
	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	pgxPool.Close()

	log.Info().Msg("Server exited properly")
}
