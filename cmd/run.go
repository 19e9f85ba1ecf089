package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"casino/config"
	"casino/database"
	"casino/domain/events"
	"casino/domain/games"
	"casino/domain/services"
	"casino/repository"
	"casino/server"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting casino engine...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Initialize game registry and services
	registry := games.NewDefaultRegistry()
	rng := games.NewTimeSeededRand()
	casinoService := services.NewCasinoService(uowFactory, registry, rng)
	userService := services.NewUserService(uowFactory)

	// Initialize HTTP server
	httpServer := server.New(cfg.HTTPAddr, casinoService, userService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start()
	}()

	log.Printf("Casino engine is running in %s mode on %s...", cfg.Environment, cfg.HTTPAddr)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}
