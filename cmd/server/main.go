package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workoutlogger/internal/api"
	"workoutlogger/internal/config"
	"workoutlogger/internal/repository"
	"workoutlogger/internal/repository/memory"
	mongorepo "workoutlogger/internal/repository/mongo"
	"workoutlogger/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Workout Logger Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Workout Store ---
	var workoutRepo repository.WorkoutRepository
	switch cfg.Storage.Driver {
	case "memory":
		log.Println("Using in-memory workout store (data is not persisted).")
		workoutRepo = memory.NewMemoryWorkoutRepository()
	case "mongo":
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		}()

		workoutRepo = mongorepo.NewMongoWorkoutRepository(appDB)
	default:
		log.Fatalf("FATAL: Unknown storage driver %q", cfg.Storage.Driver)
	}

	// --- Services ---
	log.Println("Initializing services...")
	workoutService := service.NewWorkoutService(workoutRepo)

	// --- Gin Engine & Routes ---
	router := gin.Default() // Includes Logger and Recovery middleware
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, workoutService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
