package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/conecta-coleta/internal/config"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/infrastructure/mapbox"
	"github.com/conecta-coleta/internal/pkg/logger"
	"github.com/conecta-coleta/internal/repository/cache"
	"github.com/conecta-coleta/internal/repository/catalog"
	"github.com/conecta-coleta/internal/repository/postgres"
	redisRepo "github.com/conecta-coleta/internal/repository/redis"
	"github.com/conecta-coleta/internal/usecase"
	"github.com/conecta-coleta/internal/worker"
	"github.com/conecta-coleta/internal/worker/truck"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Tracker.Enabled {
		fmt.Println("Tracker is disabled in configuration. Set TRACKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting truck tracker worker")
	log.Info("Configuration loaded",
		zap.String("truck_id", cfg.Tracker.TruckID),
		zap.String("route_id", cfg.Tracker.RouteID),
		zap.String("stream", cfg.Tracker.Stream),
		zap.Duration("tick_interval", cfg.Tracker.TickInterval))

	// 3. Routes: PostgreSQL или встроенный каталог
	var routeRepo repository.RouteRepository = catalog.NewRouteRepository()
	if cfg.Database.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Warn("PostgreSQL unavailable, using built-in routes", zap.Error(err))
		} else {
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("Failed to close PostgreSQL connection", zap.Error(err))
				}
			}()
			routeRepo = postgres.NewRouteRepository(db)
		}
	}

	// 4. Connect to Redis: без него публиковать некуда
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	var directions repository.DirectionsRepository
	if mapboxClient := mapbox.NewMapboxClient(&cfg.Mapbox, log); mapboxClient.Enabled() {
		directions = mapboxClient
	}

	// 5. Initialize use cases
	truckUC := usecase.NewTruckUseCase(
		routeRepo,
		cacheRepo,
		directions,
		catalog.FallbackRoute(),
		cfg.Simulation,
		cfg.Cache.RouteCacheTTL,
		log,
	)

	// 6. Initialize workers
	tracker := truck.NewTrackerWorker(
		streamRepo,
		truckUC,
		cfg.Tracker.TruckID,
		cfg.Tracker.RouteID,
		cfg.Tracker.Stream,
		cfg.Tracker.TickInterval,
		log,
	)
	lastPosition := truck.NewLastPositionWorker(
		streamRepo,
		cacheRepo,
		cfg.Tracker.Stream,
		cfg.Cache.RouteCacheTTL,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(tracker)
	workerManager.Register(lastPosition)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
