package handlers

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solarwatch/blackout-api/internal/config"
)

type ForecastsHandler struct {
	cfg *config.Config
}

func NewForecastsHandler(cfg *config.Config) *ForecastsHandler {
	return &ForecastsHandler{cfg: cfg}
}

// ListForecasts handles GET /forecasts, enumerating the CSV files
// available for named-file prediction.
func (h *ForecastsHandler) ListForecasts(c *gin.Context) {
	entries, err := readDir(h.cfg.Predictor.ForecastsDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("failed to read forecasts directory: %v", err),
		})
		return
	}

	files := make([]string, 0, len(entries))
	for _, name := range entries {
		if strings.HasSuffix(name, ".csv") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(files),
		"files":   files,
	})
}

func readDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
