package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solarwatch/blackout-api/internal/api/handlers"
	"github.com/solarwatch/blackout-api/internal/config"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config, runner handlers.PredictorRunner) {
	healthHandler := handlers.NewHealthHandler(cfg)
	predictHandler := handlers.NewPredictHandler(cfg, runner)
	forecastsHandler := handlers.NewForecastsHandler(cfg)
	modelHandler := handlers.NewModelHandler(runner)

	router.GET("/", handlers.Root)
	router.GET("/health", healthHandler.HealthCheck)

	// Prediction routes
	predict := router.Group("/predict")
	{
		predict.POST("/single", predictHandler.PredictSingle)
		predict.POST("/batch", predictHandler.PredictBatch)
		predict.POST("/upload", predictHandler.PredictUpload)
		predict.GET("/csv/:filename", predictHandler.PredictFile)
	}

	router.GET("/forecasts", forecastsHandler.ListForecasts)
	router.GET("/model/info", modelHandler.ModelInfo)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   fmt.Sprintf("route not found: %s", c.Request.URL.Path),
		})
	})
}
