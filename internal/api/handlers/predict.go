package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/solarwatch/blackout-api/internal/config"
	"github.com/solarwatch/blackout-api/internal/models"
	"github.com/solarwatch/blackout-api/internal/predictor"
	"github.com/solarwatch/blackout-api/internal/utils"
)

type PredictHandler struct {
	cfg    *config.Config
	runner PredictorRunner
}

func NewPredictHandler(cfg *config.Config, runner PredictorRunner) *PredictHandler {
	return &PredictHandler{
		cfg:    cfg,
		runner: runner,
	}
}

// PredictSingle handles POST /predict/single. Both fields are required
// and the probability must lie in [0,1]; valid input is forwarded as
// positional arguments to the predictor.
func (h *PredictHandler) PredictSingle(c *gin.Context) {
	var input models.ForecastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationErrorf("invalid request body: %v", err))
		return
	}
	if err := input.Validate(); err != nil {
		respondError(c, err)
		return
	}

	prediction, err := h.runner.Run(
		c.Request.Context(),
		input.Datetime,
		strconv.FormatFloat(*input.FlareProbability, 'g', -1, 64),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	relayPrediction(c, prediction)
}

// PredictBatch handles POST /predict/batch. Every record is validated
// before any file is created; the staged CSV is removed on every exit
// path.
func (h *PredictHandler) PredictBatch(c *gin.Context) {
	var req models.BatchPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, utils.NewValidationErrorf("invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	path, cleanup, err := predictor.StageBatch(req.Forecasts)
	if err != nil {
		respondError(c, err)
		return
	}
	defer cleanup()

	prediction, err := h.runner.Run(c.Request.Context(), "batch", path)
	if err != nil {
		respondError(c, err)
		return
	}
	relayPrediction(c, prediction)
}

// PredictUpload handles POST /predict/upload. The uploaded file is saved
// under a unique temporary name and removed on every exit path; it is
// size-bounded by predictor.max_upload_mb.
func (h *PredictHandler) PredictUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, utils.NewValidationError("multipart field 'file' is required"))
		return
	}

	maxBytes := h.cfg.Predictor.MaxUploadMB << 20
	if fileHeader.Size > maxBytes {
		respondError(c, utils.NewValidationErrorf("file exceeds the %d MiB limit", h.cfg.Predictor.MaxUploadMB))
		return
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("forecast_upload_%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		respondError(c, fmt.Errorf("failed to save uploaded file: %w", err))
		return
	}
	defer func() { _ = os.Remove(path) }()

	prediction, err := h.runner.Run(c.Request.Context(), "batch", path)
	if err != nil {
		respondError(c, err)
		return
	}
	relayPrediction(c, prediction)
}

// PredictFile handles GET /predict/csv/:filename. The filename must not
// escape the forecasts directory; the file is not owned by the request
// and is never removed.
func (h *PredictHandler) PredictFile(c *gin.Context) {
	filename := c.Param("filename")
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, "/\\") {
		respondError(c, utils.NewValidationErrorf("invalid filename: %q", filename))
		return
	}

	path := filepath.Join(h.cfg.Predictor.ForecastsDir, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   fmt.Sprintf("forecast file not found: %s", filename),
		})
		return
	}

	prediction, err := h.runner.Run(c.Request.Context(), "batch", path)
	if err != nil {
		respondError(c, err)
		return
	}
	relayPrediction(c, prediction)
}
