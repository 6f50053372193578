package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/tzsched/internal/config"
	"github.com/joshua-takyi/tzsched/internal/connect"
	"github.com/joshua-takyi/tzsched/internal/container"
	"github.com/joshua-takyi/tzsched/internal/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local", ".env")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg)
	logger.Info("Starting tz-scheduler API server", "environment", cfg.Environment, "store", cfg.StoreDriver)

	var mongoClient *mongo.Client
	if cfg.StoreDriver == config.StoreMongoDB {
		mongoClient, err = connect.MongoDBConnect(cfg.MongoURI())
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to MongoDB successfully", "database", cfg.MongoDBDatabase)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err = connect.EnsureIndexes(ctx, mongoClient, cfg.MongoDBDatabase)
		cancel()
		if err != nil {
			logger.Error("Failed to create MongoDB indexes", "error", err)
			os.Exit(1)
		}
	}

	// Initialize dependency container
	appContainer := container.NewContainer(logger, cfg, mongoClient)

	// Setup routes
	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if mongoClient != nil {
		if err := connect.MongoDBDisconnect(mongoClient); err != nil {
			logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
