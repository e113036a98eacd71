// File: tradely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"tradely/config"
	"tradely/cron"
	"tradely/database"
	catalogRepo "tradely/database/repository/catalog"
	quoteRepo "tradely/database/repository/quote"
	"tradely/handlers"
	"tradely/middleware"
	"tradely/routes"
	"tradely/services/calculator"
	"tradely/services/distance"
	"tradely/services/quote"
	"tradely/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQuoteCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	qRepo := quoteRepo.NewMongoQuoteRepo()

	// external collaborators.
	distanceProvider, err := distance.NewGoogleProvider(config.AppConfig.GoogleMapsAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize distance provider: %v", err)
	}

	// services.
	bookingCalculator := &calculator.DefaultBookingCalculator{
		Distance: distanceProvider,
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	quoteService := &quote.DefaultQuoteService{
		Catalog:    catRepo,
		Quotes:     qRepo,
		Calculator: bookingCalculator,
		TaskClient: taskClient,
	}

	quoteHandler := handlers.NewQuoteHandler(quoteService, logger)

	// Background follow-up worker.
	cron.InitFollowUpWorker(qRepo)

	// Register routes.
	routes.RegisterRoutes(router, quoteHandler)

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
