// cmd/rsa-lab-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/rsa-lab/internal/api/rest/v1"
	"github.com/MGTheTrain/rsa-lab/internal/app"
	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-lab/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/config"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rsa-lab.yaml"
	}

	cfg, err := config.InitializeConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(cfg, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	textbook  crypto.TextbookService
	benchmark benchmarks.Service
}

// openDatabase is replaced in tests to observe the connection lifecycle.
var openDatabase = persistence.NewDBConnection

// initializeDependencies sets up all application components. The database is
// closed again when any later step fails.
func initializeDependencies(cfg *config.Config, log logger.Logger) (deps *appDependencies, err error) {
	// Initialize database
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if closeErr := persistence.CloseDB(db); closeErr != nil {
			log.Error("failed to close database: ", closeErr)
		}
	}()

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	benchmarkRepo, err := persistence.NewGormBenchmarkRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create benchmark repository: %w", err)
	}

	// Initialize cryptographic processors
	textbookProcessor, err := cryptography.NewTextbookRSAProcessorFromSettings(&cfg.RSA, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	log.Info("Cryptographic processors initialized successfully")

	// Initialize services
	textbookService, err := app.NewTextbookService(textbookProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook service: %w", err)
	}

	harness, err := app.NewHarness(cfg.Benchmark.ProgressEvery, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create harness: %w", err)
	}

	benchmarkService, err := app.NewBenchmarkService(textbookProcessor, rsaProcessor, benchmarkRepo, harness, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create benchmark service: %w", err)
	}
	log.Info("Application services initialized successfully")

	return &appDependencies{
		db:        db,
		textbook:  textbookService,
		benchmark: benchmarkService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.Config, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()
	r.ContextWithFallback = true

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.textbook, deps.benchmark, deps.benchmark)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Infof("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
