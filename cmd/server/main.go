package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/solarwatch/blackout-api/internal/api"
	"github.com/solarwatch/blackout-api/internal/config"
	"github.com/solarwatch/blackout-api/internal/logging"
	"github.com/solarwatch/blackout-api/internal/middleware"
	"github.com/solarwatch/blackout-api/internal/predictor"
)

const serviceName = "blackout-api"

func main() {
	// Load .env if present; deployments rely on real environment variables
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewStandardLogger(cfg.LogLevel)

	// logrus logger for the predictor runner
	runnerLog := logrus.New()
	runnerLog.SetFormatter(&logrus.JSONFormatter{})
	runnerLog.SetLevel(logging.ParseLogrusLevel(cfg.LogLevel))

	runner := predictor.NewRunner(cfg, runnerLog)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin router
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.MaxMultipartMemory = cfg.Predictor.MaxUploadMB << 20

	api.SetupRoutes(router, cfg, runner)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.LogStartup(serviceName, "1.0.0", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.LogShutdown(serviceName, "signal received")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
