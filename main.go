package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"resto-api/config"
	"resto-api/controllers"
	"resto-api/dtos"
	"resto-api/events"
	"resto-api/logger"
	"resto-api/middlewares"
	"resto-api/models"
	"resto-api/routes"
	"resto-api/seeders"
	"resto-api/services"
	"resto-api/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if err := logger.Setup(cfg.Logging); err != nil {
		log.WithError(err).Fatal("failed to set up logging")
	}
	dtos.RegisterValidators()

	// connect db
	if err := config.ConnectDatabase(cfg.Database); err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}
	if err := models.AutoMigrate(config.DB); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}
	if cfg.Database.Seed {
		if err := seeders.Seed(config.DB); err != nil {
			log.WithError(err).Error("seeding failed")
		}
	}

	bus := events.NewBus(cfg)
	defer bus.Close()

	auth := services.NewAuthService(cfg.Auth)
	controllers.Setup(controllers.Dependencies{
		Auth:     auth,
		Events:   bus,
		Notifier: utils.NewWhatsAppNotifier(cfg.FonnteToken),
		Billing:  cfg.Billing,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	// cors before routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, auth)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
