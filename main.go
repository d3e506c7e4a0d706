// File: freeflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freeflow/config"
	"freeflow/cron"
	"freeflow/database"
	availabilityRepoPkg "freeflow/database/repository/availability"
	bookingRepoPkg "freeflow/database/repository/booking"
	documentRepoPkg "freeflow/database/repository/document"
	listingRepoPkg "freeflow/database/repository/listing"
	orderRepoPkg "freeflow/database/repository/order"
	reviewRepoPkg "freeflow/database/repository/review"
	serviceTypeRepoPkg "freeflow/database/repository/servicetype"
	subscriberRepoPkg "freeflow/database/repository/subscriber"
	"freeflow/handlers"
	"freeflow/routes"
	"freeflow/services/booking"
	documentation "freeflow/services/documentation"
	"freeflow/services/mailer"
	"freeflow/services/marketplace"
	"freeflow/services/newsletter"
	"freeflow/services/storage"
	"freeflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitTokenCache()

	// Repositories.
	bookingsRepo := bookingRepoPkg.NewMongoBookingRepo()
	serviceTypesRepo := serviceTypeRepoPkg.NewMongoServiceTypeRepo()
	availabilitiesRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	listingsRepo := listingRepoPkg.NewMongoListingRepo()
	ordersRepo := orderRepoPkg.NewMongoOrderRepo()
	reviewsRepo := reviewRepoPkg.NewMongoReviewRepo()
	documentsRepo := documentRepoPkg.NewMongoDocumentRepo()
	subscribersRepo := subscriberRepoPkg.NewMongoSubscriberRepo()

	if idx, ok := bookingsRepo.(interface{ EnsureIndexes() error }); ok {
		if err := idx.EnsureIndexes(); err != nil {
			logger.Warn("main: failed to ensure booking indexes", zap.Error(err))
		}
	}

	// Shared infrastructure.
	mailSender := mailer.NewSMTPSender()
	taskScheduler := cron.NewTaskScheduler()
	defer taskScheduler.Close()

	// Services.
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingsRepo,
		Types:        serviceTypesRepo,
		Availability: availabilitiesRepo,
		Mailer:       mailSender,
		Scheduler:    taskScheduler,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
	if err := bookingService.EnsureDefaultServiceTypes(context.Background()); err != nil {
		logger.Warn("main: failed to seed service catalogue", zap.Error(err))
	}

	marketplaceService := &marketplace.DefaultMarketplaceService{
		Listings: listingsRepo,
		Orders:   ordersRepo,
		Reviews:  reviewsRepo,
	}

	documentationService := &documentation.DefaultDocumentationService{
		Repo: documentsRepo,
	}

	newsletterService := &newsletter.DefaultNewsletterService{
		Repo:    subscribersRepo,
		Tokens:  newsletter.NewRedisTokenStore(),
		Mailer:  mailSender,
		BaseURL: config.AppConfig.PublicBaseURL,
	}

	// Handlers.
	handlerBundle := &handlers.HandlerBundle{
		Booking:       handlers.NewBookingHandler(bookingService),
		Marketplace:   handlers.NewMarketplaceHandler(marketplaceService),
		Documentation: handlers.NewDocumentationHandler(documentationService),
		Newsletter:    handlers.NewNewsletterHandler(newsletterService),
	}

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		// Asset routes are skipped when storage is unavailable; everything
		// else still serves.
		logger.Warn("main: cloudinary storage unavailable, asset endpoints disabled", zap.Error(err))
	} else {
		handlerBundle.Assets = handlers.NewAssetHandler(storageService)
	}

	// Background reminder worker.
	cron.InitReminderWorker(bookingsRepo, mailSender, taskScheduler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.CacheClient, utils.TokenCacheClient},
		database.MongoClient,
		30*time.Second,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, handlerBundle)

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
