// File: riadsiena/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riadsiena/config"
	"riadsiena/handlers"
	"riadsiena/middleware"
	"riadsiena/routes"
	"riadsiena/services/booking"
	"riadsiena/services/content"
	"riadsiena/services/notification"
	"riadsiena/services/sheets"
	"riadsiena/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRateClient()

	ctx := context.Background()
	sheetsClient, err := sheets.NewGoogleClient(ctx, config.AppConfig.GoogleCredentialsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize sheets client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	contentService := &content.DefaultContentService{
		Sheets:             sheetsClient,
		SpreadsheetID:      config.AppConfig.SheetsSpreadsheetID,
		NexusSpreadsheetID: config.AppConfig.NexusSpreadsheetID,
	}

	store := &booking.SheetStore{
		Sheets:        sheetsClient,
		SpreadsheetID: config.AppConfig.SheetsSpreadsheetID,
		SheetName:     config.AppConfig.BookingSheet,
	}

	mailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUsername,
		config.AppConfig.SMTPPassword,
		config.AppConfig.SMTPSender,
		config.AppConfig.OperatorEmail,
		logger,
	)

	dispatcher := &booking.Dispatcher{
		Store:  store,
		Mailer: mailer,
		Logger: logger,
	}
	if config.AppConfig.BookingWebhookURL != "" {
		dispatcher.Webhook = booking.NewWebhookClient(config.AppConfig.BookingWebhookURL)
	}

	bookingHandler := handlers.NewBookingHandler(dispatcher, config.AppConfig.PropertyName, logger)
	contentHandler := handlers.NewContentHandler(contentService, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler, contentHandler)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
