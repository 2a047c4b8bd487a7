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
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"hostel-backend/config"
	"hostel-backend/routes"
)

func setupLogging(s config.Settings) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	if s.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if level < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	settings := config.Load()
	setupLogging(settings)
	if envErr != nil {
		log.Info(".env not found; continuing with environment variables")
	}

	if err := config.ConnectDatabase(settings); err != nil {
		log.WithError(err).WithField("driver", settings.Driver).Fatal("database bootstrap failed")
	}
	db := config.DB
	log.WithField("driver", settings.Driver).Info("database connected and initialised")

	handlers := routes.NewHandlers(db, settings.AdminEmail, settings.AdminPassword)
	router := routes.SetupRouter(handlers, settings.CORSOrigins)

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
