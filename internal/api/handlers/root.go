package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root handles GET /, returning a static description of the API surface.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Solar Blackout Prediction API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"GET /health":                "service and model health",
			"POST /predict/single":       "predict from one {datetime, flare_probability} record",
			"POST /predict/batch":        "predict from a JSON array of forecast records",
			"POST /predict/upload":       "predict from an uploaded CSV (multipart field 'file')",
			"GET /predict/csv/:filename": "predict from a CSV in the forecasts directory",
			"GET /forecasts":             "list available forecast CSV files",
			"GET /model/info":            "model metadata",
		},
		"risk_levels": []string{"Very Low", "Low", "Moderate", "High", "Very High"},
	})
}
