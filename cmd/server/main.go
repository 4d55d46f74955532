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

	"github.com/joho/godotenv"

	"github.com/gracehill/ministry/internal/config"
	"github.com/gracehill/ministry/internal/database"
	"github.com/gracehill/ministry/internal/notify"
	"github.com/gracehill/ministry/internal/repository"
	memoryrepo "github.com/gracehill/ministry/internal/repository/memory"
	postgresrepo "github.com/gracehill/ministry/internal/repository/postgres"
	"github.com/gracehill/ministry/internal/service"
	transporthttp "github.com/gracehill/ministry/internal/transport/http"
	"github.com/gracehill/ministry/internal/transport/http/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	// Storage
	var (
		prayerRepo  repository.PrayerRequestRepository
		contactRepo repository.ContactMessageRepository
	)

	switch cfg.StorageDriver {
	case config.DriverMemory:
		// Transient demo mode: everything is lost on restart.
		prayerRepo = memoryrepo.NewPrayerRequestRepo()
		contactRepo = memoryrepo.NewContactMessageRepo()
		log.Println("Using in-memory storage")
	case config.DriverPostgres:
		if err := database.Migrate(cfg); err != nil {
			log.Fatal(err)
		}
		pool, err := database.Connect(cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		log.Println("Connected to database")

		prayerRepo = postgresrepo.NewPrayerRequestRepo(pool)
		contactRepo = postgresrepo.NewContactMessageRepo(pool)
	default:
		log.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	// Services
	notifier := notify.NewLogNotifier()

	prayerService := service.NewPrayerRequestService(prayerRepo)
	prayerService.SetNotifier(notifier)

	contactService := service.NewContactMessageService(contactRepo)
	contactService.SetNotifier(notifier)

	// Handlers
	prayerHandler := handlers.NewPrayerRequestHandler(prayerService)
	contactHandler := handlers.NewContactMessageHandler(contactService)

	router := transporthttp.NewRouter(prayerHandler, contactHandler)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
