package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/application"
	"github.com/salonsphere/service-booking/internal/auth"
	"github.com/salonsphere/service-booking/internal/config"
	"github.com/salonsphere/service-booking/internal/database"
	"github.com/salonsphere/service-booking/internal/events"
	"github.com/salonsphere/service-booking/internal/handler"
	"github.com/salonsphere/service-booking/internal/kafka"
	"github.com/salonsphere/service-booking/internal/logger"
	"github.com/salonsphere/service-booking/internal/middleware"
	"github.com/salonsphere/service-booking/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&repository.AccountModel{},
		&repository.ProviderModel{},
		&repository.BookingModel{},
	); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	jwtManager := auth.NewJWTManager(cfg.JWTConfig.Secret, 24*time.Hour)

	producer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer producer.Close()

	accountStore := repository.NewGormAccountStore(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	providerCatalog := repository.NewGormProviderCatalog(db)

	bookingService := application.NewBookingService(accountStore, bookingRepo, producer, log)
	catalogService := application.NewCatalogService(accountStore, providerCatalog, log)
	accountService := application.NewAccountService(accountStore, providerCatalog, jwtManager, log)

	paymentConsumer := events.NewPaymentEventConsumer(
		cfg.KafkaConfig.Brokers,
		cfg.KafkaConfig.GroupPrefix+"service-booking",
		bookingService,
		log,
	)
	defer paymentConsumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := paymentConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("payment consumer stopped", zap.Error(err))
		}
	}()

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(log),
		middleware.LoggerMiddleware(log),
		middleware.CORSMiddleware(),
		middleware.SecurityHeadersMiddleware(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	handler.NewAccountHandler(accountService, catalogService, log).RegisterRoutes(api)
	handler.NewCatalogHandler(catalogService, log).RegisterRoutes(api)
	handler.NewBookingHandler(bookingService, log).RegisterRoutes(api, jwtManager)
	handler.NewProviderHandler(bookingService, log).RegisterRoutes(api, jwtManager)
	handler.NewAdminHandler(bookingService, accountService, log).RegisterRoutes(api, jwtManager)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("booking service listening", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	log.Info("stopped")
}
