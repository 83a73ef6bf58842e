package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lifelogkit/lifelog-exporter/internal/adapter/handler"
	"github.com/lifelogkit/lifelog-exporter/internal/infrastructure/cache"
	"github.com/lifelogkit/lifelog-exporter/internal/infrastructure/external/lifelog"
	httpmw "github.com/lifelogkit/lifelog-exporter/internal/infrastructure/http/middleware"
	"github.com/lifelogkit/lifelog-exporter/internal/usecase/optimizer"
	"github.com/lifelogkit/lifelog-exporter/pkg/config"
	"github.com/lifelogkit/lifelog-exporter/pkg/tokenizer"
	pkgvalidator "github.com/lifelogkit/lifelog-exporter/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-API-Key"},
	}))

	logger, err := zap.NewProduction()
	if cfg.Server.Environment == "development" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Fetch cache: Redis when enabled, in-memory otherwise
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, logger)
	} else {
		log.Println("📦 Redis disabled, using in-memory fetch cache")
		store = cache.NewMemoryStore()
	}

	// Upstream lifelog client with per-date cache
	log.Println("🔗 Initializing lifelog API client...")
	client := lifelog.NewClient(&cfg.Lifelog, logger)
	fetcher := lifelog.NewCachedFetcher(client, store, cfg.Redis.TTL, logger)

	// Content-optimization engine around the shared tokenizer model
	log.Println("🧮 Initializing optimization engine...")
	svc := optimizer.NewService(tokenizer.Default(), logger)

	// Handlers and routes
	log.Println("🛣️  Setting up routes...")
	exportHandler := handler.NewExportHandler(svc, fetcher, cfg, logger)
	apiKeyMW := httpmw.NewAPIKeyMiddleware(cfg.Lifelog.APIKey)

	router := handler.NewRouter(cfg, exportHandler, apiKeyMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
