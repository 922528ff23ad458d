package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academiasport/internal/config"
	"academiasport/internal/db"
	"academiasport/internal/email"
	"academiasport/internal/logger"
	"academiasport/internal/seed"
	"academiasport/internal/server"
	"academiasport/internal/store"

	"github.com/redis/go-redis/v9"
)

// @title Academia Sport API
// @version 1.0
// @description Gym membership, class booking and facility check-in API.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.InitWithLevel(cfg.LogLevel)
	logger.Info("Starting Academia Sport", "store", cfg.StoreDriver, "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		repos  server.Repositories
		health server.HealthChecker
	)
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		logger.Info("Connecting to database...")
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")

		repos = server.PostgresRepositories(database)
		health = db.NewPinger(database)
	default:
		repos = server.MemoryRepositories(store.New())
	}

	var rdb *redis.Client
	if cfg.EmailEnabled() {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		rdb,
	)
	defer emailService.Close()
	go emailService.Start(ctx)

	services := server.NewServices(cfg, repos, emailService)

	err = seed.Run(ctx, seed.Deps{
		Plans:     repos.Plans,
		Users:     services.Users,
		Classes:   repos.Classes,
		Equipment: repos.Equipment,
	}, seed.Options{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		DemoData:      cfg.SeedDemoData,
		Now:           time.Now(),
	})
	if err != nil {
		logger.Fatalf("Failed to seed data: %v", err)
	}

	srv := server.New(cfg, services, health)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
