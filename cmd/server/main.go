package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"sportmatch/docs"
	"sportmatch/internal/auth"
	"sportmatch/internal/cache"
	"sportmatch/internal/config"
	"sportmatch/internal/db"
	"sportmatch/internal/events"
	"sportmatch/internal/handler"
	"sportmatch/internal/logger"
	"sportmatch/internal/repository"
	"sportmatch/internal/router"
	"sportmatch/internal/service"
)

// @title SportMatch API
// @version 1.0
// @description Sports activity coordination: users, sports, facilities, activities, matches and bookings.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatalf("config: %v", err)
	}

	log := logger.New(logger.Config{Debug: cfg.LogDebug})
	defer func() { _ = log.Sync() }()

	gormDB, err := db.Open(cfg.DatabaseURL, cfg.LogDebug)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "sportmatch:")
	defer func() { _ = cacheClient.Close() }()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warnw("redis unavailable, continuing without cache", "addr", cfg.RedisAddr, "error", err)
	}

	publisher := newPublisher(cfg, log)
	defer func() { _ = publisher.Close() }()

	store := repository.NewStore(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL())

	authService := service.NewAuthService(store.Users(), jwtService, log)
	userService := service.NewUserService(store, cacheClient)
	sportService := service.NewSportService(store)
	facilityService := service.NewFacilityService(store)
	activityService := service.NewActivityService(store, publisher, log)
	matchService := service.NewMatchService(store, publisher, log)
	bookingService := service.NewBookingService(store, publisher, log)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, authService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Sport:    handler.NewSportHandler(sportService),
		Facility: handler.NewFacilityHandler(facilityService),
		Activity: handler.NewActivityHandler(activityService),
		Match:    handler.NewMatchHandler(matchService),
		Booking:  handler.NewBookingHandler(bookingService),
	}, log)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

func newPublisher(cfg *config.Config, log *logger.Logger) events.Publisher {
	if cfg.AMQPURL == "" {
		log.Info("AMQP_URL not set, domain events are disabled")
		return events.Nop{}
	}
	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		log.Warnw("rabbitmq unavailable, domain events are disabled", "error", err)
		return events.Nop{}
	}
	log.Infow("publishing domain events", "exchange", cfg.AMQPExchange)
	return publisher
}
