package handlers

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/solarwatch/blackout-api/internal/config"
)

var startTime = time.Now()

type HealthHandler struct {
	cfg *config.Config
}

type HealthResponse struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Uptime    string       `json:"uptime"`
	Model     string       `json:"model"`
	Python    string       `json:"python"`
	System    SystemStatus `json:"system"`
}

type SystemStatus struct {
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	CPUCores          int     `json:"cpu_cores"`
	Goroutines        int     `json:"goroutines"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck verifies that the model artifact and the predictor entry
// point are present on the filesystem and reports a composite status.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	modelStatus := "healthy"
	if _, err := os.Stat(h.cfg.Predictor.ModelPath); err != nil {
		modelStatus = fmt.Sprintf("unhealthy: model artifact not found at %s", h.cfg.Predictor.ModelPath)
	}

	pythonStatus := "healthy"
	if _, err := os.Stat(h.cfg.Predictor.Script); err != nil {
		pythonStatus = fmt.Sprintf("unhealthy: predictor script not found at %s", h.cfg.Predictor.Script)
	}

	overallStatus := "healthy"
	if modelStatus != "healthy" || pythonStatus != "healthy" {
		overallStatus = "unhealthy"
	}

	response := HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now(),
		Uptime:    time.Since(startTime).String(),
		Model:     modelStatus,
		Python:    pythonStatus,
		System:    systemStatus(),
	}

	statusCode := http.StatusOK
	if overallStatus != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

func systemStatus() SystemStatus {
	status := SystemStatus{
		Goroutines: runtime.NumGoroutine(),
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		status.MemoryUsedPercent = vm.UsedPercent
	}
	if cores, err := cpu.Counts(true); err == nil {
		status.CPUCores = cores
	}
	return status
}
