// File: washlane/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washlane/config"
	"washlane/database"
	catalogRepo "washlane/database/repository/catalog"
	orderRepo "washlane/database/repository/order"
	"washlane/handlers"
	"washlane/middleware"
	"washlane/routes"
	"washlane/services/booking"
	"washlane/services/cart"
	"washlane/services/notification"
	"washlane/services/order"
	"washlane/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitNotifyCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	ordRepo := orderRepo.NewMongoOrderRepo()

	// services.
	cartService := &cart.DefaultCartService{
		Catalog: catRepo,
	}

	paymentHandler := booking.NewStripePaymentHandler(logger)
	orderSubmitter := &booking.DefaultOrderSubmitter{
		Orders:  ordRepo,
		Payment: paymentHandler,
		Logger:  logger,
	}
	checkoutService := &booking.DefaultCheckoutService{
		Store:     booking.NewRedisSessionStore(),
		Locks:     booking.NewRedisSubmitLocker(),
		Submitter: orderSubmitter,
		Logger:    logger,
	}

	trackingService := &order.DefaultTrackingService{
		Repo:   ordRepo,
		Logger: logger,
	}

	unreadStore := notification.NewRedisUnreadStore()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Catalog:      handlers.NewCatalogHandler(catRepo),
		Cart:         handlers.NewCartHandler(cartService),
		Booking:      handlers.NewBookingHandler(checkoutService, logger),
		Order:        handlers.NewOrderHandler(trackingService),
		Notification: handlers.NewNotificationHandler(unreadStore),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
