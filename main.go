package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"

	"apexdrive/config"
	"apexdrive/handlers"
	"apexdrive/middleware"
	"apexdrive/routes"
	"apexdrive/services/auth"
	"apexdrive/services/booking"
	ai "apexdrive/services/intelligence"
	"apexdrive/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitBookingCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Payment handler: Stripe when a key is configured, simulated otherwise.
	var paymentHandler booking.PaymentHandler
	if config.AppConfig.StripeKey != "" {
		stripe.Key = config.AppConfig.StripeKey
		paymentHandler = booking.NewStripePaymentHandler(logger)
	} else {
		logger.Warn("no Stripe key configured; using the simulated payment handler")
		paymentHandler = booking.NewSimulatedPaymentHandler(logger)
	}

	submitter := &booking.DefaultSubmitter{
		Payments:   paymentHandler,
		Logger:     logger,
		Deposit:    config.AppConfig.ConciergeDeposit,
		ServiceFee: config.AppConfig.ConciergeServiceFee,
		Currency:   config.AppConfig.Currency,
	}

	sessionService := booking.NewSessionService(utils.GetBookingCacheClient(), submitter, logger)
	sessionService.SubmitTimeout = time.Duration(config.AppConfig.SubmitTimeout) * time.Second

	authService := auth.NewJWTService(
		config.AppConfig.JWTSecret,
		time.Duration(config.AppConfig.GuestTokenTTL)*time.Minute,
		utils.GetAuthCacheClient(),
	)

	var narrator ai.Narrator
	if config.AppConfig.GeminiAPIKey != "" {
		n, err := ai.NewGeminiNarrator(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: narration disabled: %v", err)
		} else {
			narrator = n
		}
	}

	bookingHandler := handlers.NewBookingHandler(sessionService, authService, logger)

	routes.RegisterCatalogRoutes(router)
	routes.RegisterRecommendRoutes(router, narrator)
	routes.RegisterBookingRoutes(router, bookingHandler)
	routes.RegisterHealthRoutes(router)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetBookingCacheClient(),
		utils.GetAuthCacheClient(),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
