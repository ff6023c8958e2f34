// File: nutribook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutribook/config"
	"nutribook/cron"
	"nutribook/database"
	appointmentRepo "nutribook/database/repository/appointment"
	profileRepo "nutribook/database/repository/profile"
	"nutribook/handlers"
	"nutribook/middleware"
	"nutribook/routes"
	"nutribook/services/appointments"
	"nutribook/services/booking"
	"nutribook/services/notification"
	"nutribook/services/profile"
	"nutribook/services/tasks"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewFirestoreAppointmentRepo()
	profRepo := profileRepo.NewFirestoreProfileRepo()

	// services.
	reminderScheduler := tasks.NewScheduler()
	bookingService := &booking.DefaultBookingService{
		Repo:      apptRepo,
		Reminders: reminderScheduler,
	}
	appointmentService := &appointments.DefaultAppointmentService{
		Repo:         apptRepo,
		TickInterval: time.Duration(config.AppConfig.ReclassifyTickSeconds) * time.Second,
	}
	profileService := &profile.DefaultProfileService{
		Repo:     profRepo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.ProfileCacheTTLMinutes) * time.Minute,
	}

	notificationService, err := notification.NewDefaultNotificationService(profRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	appointmentsHandler := handlers.NewAppointmentsHandler(appointmentService)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListNutritionistsHandler: handlers.ListNutritionistsHandler,
		GetNutritionistHandler:   handlers.GetNutritionistHandler,

		// Appointment endpoints.
		BookAppointmentHandler:    bookingHandler.BookAppointmentHandler,
		ListAppointmentsHandler:   appointmentsHandler.ListAppointmentsHandler,
		StreamAppointmentsHandler: appointmentsHandler.StreamAppointmentsHandler,
		CancelAppointmentHandler:  appointmentsHandler.CancelAppointmentHandler,

		// Profile endpoints.
		GetProfileHandler:    profileHandler.GetProfileHandler,
		UpdateProfileHandler: profileHandler.UpdateProfileHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, utils.AuthClient)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(apptRepo, notificationService)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.FirestoreClient)

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
