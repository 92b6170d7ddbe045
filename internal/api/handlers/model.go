package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ModelHandler struct {
	runner PredictorRunner
}

func NewModelHandler(runner PredictorRunner) *ModelHandler {
	return &ModelHandler{runner: runner}
}

// ModelInfo handles GET /model/info by invoking the predictor's info
// mode and relaying its metadata.
func (h *ModelHandler) ModelInfo(c *gin.Context) {
	info, err := h.runner.Run(c.Request.Context(), "info")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"model":   info,
	})
}
