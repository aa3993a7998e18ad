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

	"laptopMart/app/echo-server/router"
	"laptopMart/business/benchmark"
	"laptopMart/business/performance"
	"laptopMart/business/recommend"
	"laptopMart/internal/middleware"
	"laptopMart/internal/repository/artifact"
	psqlRepo "laptopMart/internal/repository/postgres"
	redisRepo "laptopMart/internal/repository/redis"
	"laptopMart/internal/rest"
	"laptopMart/pkg/config"
	"laptopMart/pkg/database"
	redisdb "laptopMart/pkg/database/redis"
	"laptopMart/pkg/logger"
	"laptopMart/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting LaptopMart recommendations", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Benchmark tables: absence of either file degrades to rule-only scoring.
	consumerOnly := cfg.Benchmark.Domain == "consumer"

	cpuTable, err := benchmark.LoadTable(cfg.Benchmark.CPUTablePath, benchmark.DeviceCPU, consumerOnly)
	if err != nil {
		logger.Warn("CPU benchmark table unavailable, rule fallback only", "error", err)
	}
	gpuTable, err := benchmark.LoadTable(cfg.Benchmark.GPUTablePath, benchmark.DeviceGPU, consumerOnly)
	if err != nil {
		logger.Warn("GPU benchmark table unavailable, rule fallback only", "error", err)
	}

	matcher := benchmark.NewMatcher(cpuTable, gpuTable, benchmark.MatcherConfig{
		Enabled:        cfg.Benchmark.UseBenchmark,
		ScaleMethod:    cfg.Benchmark.ScaleMethod,
		FuzzyEnabled:   cfg.Benchmark.FuzzyEnabled,
		FuzzyThreshold: cfg.Benchmark.FuzzyThreshold,
		CacheSize:      cfg.Benchmark.CacheSize,
	})
	scorer := performance.NewScorer(matcher)

	// Optional Redis response cache.
	var recoCache recommend.RecommendationCache
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, recommendation cache disabled", "error", err)
		} else {
			defer func() { _ = redisdb.CloseRedisClient(redisClient) }()
			ttl := time.Duration(cfg.Redis.CacheTTLSecs) * time.Second
			recoCache = redisRepo.NewRecommendationCache(redisClient, ttl)
		}
	}

	// Init repo
	catalogRepo := psqlRepo.NewCatalogRepository(db)

	// Init service
	recommendService := recommend.NewService(
		catalogRepo,
		recoCache,
		scorer,
		matcher,
		recommend.Params{
			TopK:            cfg.Recommend.TopK,
			AlphaPrice:      cfg.Recommend.AlphaPrice,
			BetaPerf:        cfg.Recommend.BetaPerf,
			PriceJumpLambda: cfg.Recommend.PriceJumpLambda,
			CandidateMargin: cfg.Recommend.CandidateMargin,
			FreshLimit:      cfg.Recommend.FreshLimit,
			FreshWindowDays: cfg.Recommend.FreshWindowDays,
			RecencyGamma:    cfg.Recommend.RecencyGamma,
			RecencyHalfLife: cfg.Recommend.RecencyHalfLife,
		},
	)

	// Load the precomputed artifact when configured, otherwise build from
	// the store at startup.
	if cfg.Recommend.ArtifactPath != "" {
		ix, err := artifact.LoadFeatureIndex(cfg.Recommend.ArtifactPath)
		if err != nil {
			logger.Fatal("Failed to load feature index artifact", "error", err)
		}
		recommendService.SetIndex(ix)
		logger.Info("Feature index loaded from artifact", "items", ix.Len())
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		items, err := recommendService.Rebuild(ctx)
		cancel()
		if err != nil {
			logger.Fatal("Failed to build feature index", "error", err)
		}
		logger.Info("Feature index built from catalog", "items", items)
	}

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendRoutes(api, recommendHandler)
	router.SetupAdminRoutes(api, recommendHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
