// File: scarlet/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scarlet/config"
	"scarlet/cron"
	"scarlet/database"
	availabilityRepoPkg "scarlet/database/repository/availability"
	bookingRepoPkg "scarlet/database/repository/booking"
	feedbackRepoPkg "scarlet/database/repository/feedback"
	profileRepoPkg "scarlet/database/repository/profile"
	"scarlet/handlers"
	"scarlet/middleware"
	"scarlet/routes"
	bookingSvc "scarlet/services/booking"
	"scarlet/services/directory"
	"scarlet/services/geo"
	"scarlet/services/listing"
	"scarlet/services/notification"
	profileSvc "scarlet/services/profile"
	"scarlet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profRepo := profileRepoPkg.NewMongoProfileRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	fbRepo := feedbackRepoPkg.NewMongoFeedbackRepo()
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()

	// background notification pipeline: bookings enqueue, the worker sends.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueue,
	})
	defer asynqClient.Close()

	pushService, err := notification.NewPushNotificationService(profRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize push notification service: %v", err)
	}
	cron.InitNotificationWorker(pushService)
	queueService := notification.NewQueueNotificationService(asynqClient)

	// services.
	profileService := &profileSvc.DefaultProfileService{
		Repo:        profRepo,
		WizardCache: utils.GetWizardCacheClient(),
	}

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:         bookRepo,
		FeedbackRepo: fbRepo,
		Notifier:     queueService,
	}

	ukDirectory := directory.UK()
	geocoder := geo.NewClient(config.AppConfig.PostcodeAPIBaseURL)

	refresher := listing.NewRefresher(profRepo, time.Duration(config.AppConfig.ListingRefreshSeconds)*time.Second)
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	refresher.Start(refreshCtx)

	listingService := &listing.DefaultListingService{
		ProfileRepo:      profRepo,
		AvailabilityRepo: availRepo,
		Directory:        ukDirectory,
		Distance:         &geo.DistanceFilter{Geo: geocoder},
		Geocoder:         geocoder,
		Refresher:        refresher,
	}

	// handlers.
	profileHandler := &handlers.ProfileHandler{ProfileService: profileService}
	listingHandler := &handlers.ListingHandler{ListingService: listingService}
	locationHandler := &handlers.LocationHandler{Directory: ukDirectory}
	bookingHandler := &handlers.BookingHandler{BookingService: bookingService}
	availabilityHandler := &handlers.AvailabilityHandler{Repo: availRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo: profRepo,

		// Profile endpoints.
		RegisterProfileHandler:     profileHandler.RegisterProfileHandler,
		AuthenticateProfileHandler: profileHandler.AuthenticateProfileHandler,
		GetOwnProfileHandler:       profileHandler.GetOwnProfileHandler,
		GetProfileByIDHandler:      profileHandler.GetProfileByIDHandler,
		UpdateProfileHandler:       profileHandler.UpdateProfileHandler,
		DeleteProfileHandler:       profileHandler.DeleteProfileHandler,
		UpdateFCMTokenHandler:      profileHandler.UpdateFCMTokenHandler,
		GetWizardStateHandler:      profileHandler.GetWizardStateHandler,
		SaveWizardStepHandler:      profileHandler.SaveWizardStepHandler,

		// Listing endpoints.
		BrowseListingsHandler: listingHandler.BrowseListingsHandler,

		// Location directory endpoints.
		GetRegionsHandler:      locationHandler.GetRegionsHandler,
		GetCountiesHandler:     locationHandler.GetCountiesHandler,
		GetTownsHandler:        locationHandler.GetTownsHandler,
		ResolveLocationHandler: locationHandler.ResolveLocationHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetSentBookingsHandler:     bookingHandler.GetSentBookingsHandler,
		GetReceivedBookingsHandler: bookingHandler.GetReceivedBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		SubmitFeedbackHandler:      bookingHandler.SubmitFeedbackHandler,

		// Availability endpoints.
		CreateAvailabilityHandler: availabilityHandler.CreateAvailabilityHandler,
		DeleteAvailabilityHandler: availabilityHandler.DeleteAvailabilityHandler,
		GetAvailabilityHandler:    availabilityHandler.GetAvailabilityHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health checks backing /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetWizardCacheClient()},
		database.MongoClient,
	)

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
