package main

// @title Transport API
// @version 1.0.0
// @description Railway ticket booking service. Manages stations, routes, trains,
// @description crews and scheduled journeys, and lets authenticated users book
// @description seat-level ticket orders with capacity and uniqueness validation.

// @contact.name API Support
// @contact.email support@transport-api.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/Grenders/transport-api/docs"
	"github.com/Grenders/transport-api/internal/config"
	httpDelivery "github.com/Grenders/transport-api/internal/delivery/http"
	"github.com/Grenders/transport-api/internal/delivery/http/handler"
	"github.com/Grenders/transport-api/internal/pkg/auth"
	"github.com/Grenders/transport-api/internal/pkg/logger"
	"github.com/Grenders/transport-api/internal/repository/cache"
	"github.com/Grenders/transport-api/internal/repository/postgres"
	redisRepo "github.com/Grenders/transport-api/internal/repository/redis"
	"github.com/Grenders/transport-api/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transport API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	stationRepo := postgres.NewStationRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	trainTypeRepo := postgres.NewTrainTypeRepository(db)
	trainRepo := postgres.NewTrainRepository(db)
	crewRepo := postgres.NewCrewRepository(db)
	journeyRepo := postgres.NewJourneyRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	userRepo := postgres.NewUserRepository(db)
	resetTokenRepo := postgres.NewResetTokenRepository(db)

	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	stationUC := usecase.NewStationUseCase(stationRepo, cacheRepo, cfg.Cache.ReferenceTTL, log)
	trainTypeUC := usecase.NewTrainTypeUseCase(trainTypeRepo, cacheRepo, cfg.Cache.ReferenceTTL, log)
	trainUC := usecase.NewTrainUseCase(trainRepo, log)
	routeUC := usecase.NewRouteUseCase(routeRepo, stationRepo, log)
	crewUC := usecase.NewCrewUseCase(crewRepo, log)
	journeyUC := usecase.NewJourneyUseCase(journeyRepo, routeRepo, trainRepo, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, journeyRepo, log)
	authUC := usecase.NewAuthUseCase(userRepo, tokens, log)
	resetUC := usecase.NewPasswordResetUseCase(userRepo, resetTokenRepo, streamRepo, cfg.SMTP.ResetURL, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	stationHandler := handler.NewStationHandler(stationUC, log)
	trainTypeHandler := handler.NewTrainTypeHandler(trainTypeUC, log)
	trainHandler := handler.NewTrainHandler(trainUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	crewHandler := handler.NewCrewHandler(crewUC, log)
	journeyHandler := handler.NewJourneyHandler(journeyUC, log)
	orderHandler := handler.NewOrderHandler(orderUC, log)
	userHandler := handler.NewUserHandler(authUC, resetUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tokens,
		stationHandler,
		trainTypeHandler,
		trainHandler,
		routeHandler,
		crewHandler,
		journeyHandler,
		orderHandler,
		userHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
