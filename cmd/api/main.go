package main

// @title Conecta Coleta API
// @version 1.0.0
// @description Сервис для жителей и компаний: симуляция прибытия мусоровоза и поиск ближайших пунктов приёма отходов (ecopontos, PEV).
// @description
// @description Основные возможности:
// @description - Обратный отсчёт и положение мусоровоза на маршруте
// @description - Ранжирование пунктов приёма по расстоянию с фильтром по категории или материалам
// @description - Геокодирование адресов через Mapbox

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/conecta-coleta/docs"
	"github.com/conecta-coleta/internal/config"
	httpDelivery "github.com/conecta-coleta/internal/delivery/http"
	"github.com/conecta-coleta/internal/delivery/http/handler"
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/infrastructure/mapbox"
	"github.com/conecta-coleta/internal/pkg/logger"
	"github.com/conecta-coleta/internal/repository/cache"
	"github.com/conecta-coleta/internal/repository/catalog"
	"github.com/conecta-coleta/internal/repository/postgres"
	"github.com/conecta-coleta/internal/usecase"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Conecta Coleta API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Float64("cycle_minutes", cfg.Simulation.CycleDurationMinutes),
		zap.String("default_route", cfg.Simulation.DefaultRouteID),
	)

	checks := make(map[string]handler.HealthCheck)

	// 3. Storage: PostgreSQL или встроенный каталог
	pointRepo, routeRepo, db := openStorage(cfg, log)
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		checks["postgres"] = db.Health
	}

	// 4. Redis cache (опционально)
	var cacheRepo repository.CacheRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, running without cache", zap.Error(err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
		checks["redis"] = redisClient.Health
	}

	// 5. Mapbox (опционально)
	var directions repository.DirectionsRepository
	var geocoder repository.GeocodingRepository
	mapboxClient := mapbox.NewMapboxClient(&cfg.Mapbox, log)
	if mapboxClient.Enabled() {
		directions = mapboxClient
		geocoder = mapboxClient
		log.Info("Mapbox client enabled", zap.String("profile", cfg.Mapbox.Profile))
	} else {
		log.Warn("MAPBOX_ACCESS_TOKEN not set, directions and geocoding disabled")
	}

	// 6. Initialize Use Cases
	truckUC := usecase.NewTruckUseCase(
		routeRepo,
		cacheRepo,
		directions,
		catalog.FallbackRoute(),
		cfg.Simulation,
		cfg.Cache.RouteCacheTTL,
		log,
	)
	disposalUC := usecase.NewDisposalUseCase(
		pointRepo,
		cacheRepo,
		geocoder,
		cfg.Cache.RankCacheTTL,
		log,
	)
	locationUC := usecase.NewLocationUseCase(geocoder, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewHealthHandler(version, checks, log),
		handler.NewTruckHandler(truckUC, log),
		handler.NewDisposalHandler(disposalUC, log),
		handler.NewLocationHandler(locationUC, log),
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// openStorage подключает PostgreSQL; без базы сервис работает на встроенном каталоге Recife
func openStorage(cfg *config.Config, log *zap.Logger) (repository.DisposalPointRepository, repository.RouteRepository, *postgres.DB) {
	if !cfg.Database.Enabled {
		log.Info("Database disabled, using built-in catalog")
		return catalog.NewDisposalPointRepository(), catalog.NewRouteRepository(), nil
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Warn("PostgreSQL unavailable, using built-in catalog", zap.Error(err))
		return catalog.NewDisposalPointRepository(), catalog.NewRouteRepository(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}

	return postgres.NewDisposalPointRepository(db), postgres.NewRouteRepository(db), db
}
