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

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aipricing/app/echo-server/router"
	"aipricing/business/admin"
	"aipricing/business/company"
	"aipricing/business/offers"
	"aipricing/business/pricing"
	"aipricing/business/simulation"
	userService "aipricing/business/user"
	"aipricing/internal/mlmodel"
	psqlRepo "aipricing/internal/repository/postgres"
	"aipricing/internal/repository/redisrepo"
	"aipricing/internal/rest"
	"aipricing/pkg/config"
	"aipricing/pkg/database"
	redisdb "aipricing/pkg/database/redis"
	"aipricing/pkg/logger"
	"aipricing/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Pricing AI API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	metrics.Init()

	// Model artifact is optional at boot; scoring degrades to the
	// rule-only path until one is loaded.
	predictor := mlmodel.NewPredictor()
	if err := predictor.Load(cfg.Model.ArtifactPath); err != nil {
		logger.Warn("Model artifact not loaded, serving degraded", "path", cfg.Model.ArtifactPath, "error", err.Error())
	} else {
		logger.Info("Model artifact loaded", "version", predictor.Version())
	}

	engine, err := pricing.NewEngine(engineConfig(cfg))
	if err != nil {
		logger.Fatal("Invalid engine configuration", "error", err)
	}

	simulationService, err := simulation.NewSimulationService(simulation.DefaultConfig(), 0)
	if err != nil {
		logger.Fatal("Invalid simulation configuration", "error", err)
	}

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	offerRepo := psqlRepo.NewOfferRepository(db)
	companyRepo := psqlRepo.NewCompanyRepository(db)
	industryRepo := psqlRepo.NewIndustryRepository(db)
	rescoreJobRepo := redisrepo.NewRescoreJobRepository(redisClient)

	// Init service
	usrService := userService.NewUserService(userRepo, validate)
	offerService := offers.NewOfferService(offerRepo, companyRepo, engine, predictor)
	rescoreService := offers.NewRescoreService(offerRepo, companyRepo, rescoreJobRepo, engine, predictor)
	companyService := company.NewCompanyService(companyRepo, industryRepo)
	adminService := admin.NewAdminService(offerRepo, companyRepo)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	offerHandler := rest.NewOfferHandler(offerService)
	companyHandler := rest.NewCompanyHandler(companyService)
	simulationHandler := rest.NewSimulationHandler(simulationService)
	adminHandler := rest.NewAdminHandler(adminService, rescoreService, predictor, cfg.Model.ArtifactPath)
	healthHandler := rest.NewHealthHandler(db, predictor)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler)
	router.SetupOfferRoutes(api, offerHandler)
	router.SetupCompanyRoutes(api, companyHandler)
	router.SetupSimulationRoutes(api, simulationHandler)
	router.SetupAdminRoutes(api, adminHandler)

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

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// engineConfig layers the env-provided scalars over the versioned engine
// defaults. Lookup tables stay in code.
func engineConfig(cfg *config.Config) pricing.EngineConfig {
	engineCfg := pricing.DefaultConfig()
	engineCfg.UnitRate = cfg.Engine.UnitRate
	engineCfg.PremiumSurcharge = cfg.Engine.PremiumSurcharge
	engineCfg.VIPDiscount = cfg.Engine.VIPDiscount
	engineCfg.WModel = cfg.Engine.WModel
	engineCfg.WRule = cfg.Engine.WRule
	engineCfg.TierLowMax = cfg.Engine.TierLowMax
	engineCfg.TierStandardMax = cfg.Engine.TierStandardMax
	return engineCfg
}
