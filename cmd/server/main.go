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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/common/uuid"
	"github.com/ironvale/gymd/internal/config"
	"github.com/ironvale/gymd/internal/events"
	"github.com/ironvale/gymd/internal/handlers/api"
	bookingRepo "github.com/ironvale/gymd/internal/repositories/booking"
	sessionRepo "github.com/ironvale/gymd/internal/repositories/session"
	userRepo "github.com/ironvale/gymd/internal/repositories/user"
	"github.com/ironvale/gymd/internal/services/accounts"
	"github.com/ironvale/gymd/internal/services/identity"
	"github.com/ironvale/gymd/internal/services/ledger"
	"github.com/ironvale/gymd/internal/services/registry"
)

const (
	appName = "gymd"
	version = "1.0.0"
)

func main() {
	// Load .env when present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	bookings, err := bookingRepo.NewRedis(&bookingRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create booking repository: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	// Initialize the event publisher; bookings work without a broker
	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQP(cfg.AMQPURL, cfg.EventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to AMQP broker: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	clk := clock.New()
	uuider := uuid.New()

	// Initialize services
	identitySvc, err := identity.New(&identity.Config{
		UserRepo:      users,
		Clock:         clk,
		UUIDGenerator: uuider,
		Secret:        cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create identity service: %v", err)
	}

	registrySvc, err := registry.New(&registry.Config{
		SessionRepo:   sessions,
		Clock:         clk,
		UUIDGenerator: uuider,
	})
	if err != nil {
		log.Fatalf("Failed to create registry service: %v", err)
	}

	ledgerSvc, err := ledger.New(&ledger.Config{
		BookingRepo:   bookings,
		SessionRepo:   sessions,
		Clock:         clk,
		UUIDGenerator: uuider,
		Publisher:     publisher,
	})
	if err != nil {
		log.Fatalf("Failed to create ledger service: %v", err)
	}

	accountsSvc, err := accounts.New(&accounts.Config{
		UserRepo: users,
		Clock:    clk,
	})
	if err != nil {
		log.Fatalf("Failed to create accounts service: %v", err)
	}

	// Initialize the API handler
	handler, err := api.New(&api.Config{
		IdentityService: identitySvc,
		RegistryService: registrySvc,
		LedgerService:   ledgerSvc,
		AccountsService: accountsSvc,
		AllowOrigins:    cfg.AllowOrigins,
		AppName:         appName,
		Version:         version,
	})
	if err != nil {
		log.Fatalf("Failed to create API handler: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	go func() {
		log.Printf("%s %s listening on %s", appName, version, cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for a termination signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}
