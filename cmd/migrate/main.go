package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/conecta-coleta/internal/config"
	"github.com/conecta-coleta/internal/pkg/logger"
	"github.com/conecta-coleta/internal/repository/catalog"
	"github.com/conecta-coleta/internal/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	command := flag.String("cmd", "up", "migration command: up, down, status")
	seed := flag.Bool("seed", false, "load the built-in Recife catalog and fallback route after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, db, *command, *seed, log); err != nil {
		log.Error("Migration failed", zap.String("cmd", *command), zap.Error(err))
		db.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, db *postgres.DB, command string, seed bool, log *zap.Logger) error {
	switch command {
	case "up":
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	case "down":
		return db.MigrateDown(ctx)
	case "status":
		status, err := db.MigrationStatus(ctx)
		if err != nil {
			return err
		}
		for _, s := range status {
			log.Info("Migration",
				zap.Int64("version", s.Source.Version),
				zap.String("state", string(s.State)),
				zap.Time("applied_at", s.AppliedAt))
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	if !seed {
		return nil
	}
	return seedCatalog(ctx, db, log)
}

// seedCatalog загружает встроенный каталог; повторный запуск обновляет те же записи
func seedCatalog(ctx context.Context, db *postgres.DB, log *zap.Logger) error {
	pointRepo := postgres.NewDisposalPointRepository(db)
	for _, p := range catalog.DefaultPoints() {
		point := p
		if err := pointRepo.Upsert(ctx, &point); err != nil {
			return fmt.Errorf("seed point %s: %w", p.ID, err)
		}
	}

	route := catalog.FallbackRoute()
	if err := postgres.NewRouteRepository(db).SaveRoute(ctx, route); err != nil {
		return fmt.Errorf("seed route %s: %w", route.ID, err)
	}

	log.Info("Catalog seeded",
		zap.Int("points", len(catalog.DefaultPoints())),
		zap.String("route_id", route.ID),
		zap.Int("route_points", route.Len()))
	return nil
}
