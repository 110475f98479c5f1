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

	"github.com/BerylCAtieno/pdf-extraction-service/internal/config"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/db"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/repository"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/router"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/services"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/storage"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// File sources
	store := storage.NewLocalStorage()
	if cfg.S3Endpoint != "" {
		s3Store, err := storage.NewS3Storage(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", "error", err)
		}
		store = storage.NewRoutedStorage(store, s3Store)
		logger.Info("S3 source enabled", "endpoint", cfg.S3Endpoint)
	}

	var opts []services.Option

	// Extraction journal
	if cfg.JournalDB != "" {
		database, err := db.NewSQLiteDB(cfg.JournalDB)
		if err != nil {
			logger.Fatal("Failed to open journal database", "error", err)
		}
		defer database.Close()

		if err := db.RunMigrations(database); err != nil {
			logger.Fatal("Failed to run migrations", "error", err)
		}

		opts = append(opts, services.WithJournal(repository.NewRepository(database)))
		logger.Info("Extraction journal enabled", "db", cfg.JournalDB)
	}

	extractionService := services.NewService(store, cfg, logger, opts...)

	// Setup HTTP router
	handler := router.NewRouter(extractionService, cfg, logger)

	// Leave room for the extraction timeout before the connection is cut.
	// Without an extraction timeout the write side is unbounded too.
	var writeTimeout time.Duration
	if cfg.ExtractionTimeout > 0 {
		writeTimeout = cfg.ExtractionTimeout + 15*time.Second
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Println("--------------------------------------------------")
	fmt.Println("                    EXTRACTION                    ")
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Serveur d'extraction écoute sur %s\n", cfg.Addr)

	// Start server
	go func() {
		logger.Info("Starting server",
			"addr", cfg.Addr,
			"cors", cfg.CORSEnabled,
			"max_file_size", cfg.MaxFileSize,
			"extraction_timeout", cfg.ExtractionTimeout.String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
