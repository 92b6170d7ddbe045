package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solarwatch/blackout-api/internal/models"
	"github.com/solarwatch/blackout-api/internal/utils"
)

// PredictorRunner is the surface handlers need from the subprocess
// runner. Kept as an interface so tests can substitute a mock.
type PredictorRunner interface {
	Run(ctx context.Context, args ...string) (models.Prediction, error)
}

// respondError maps the error taxonomy to HTTP status codes: validation
// failures are client errors, predictor failures and everything else are
// server errors. All bodies share the {success:false, error} shape.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var validationErr *utils.ValidationError
	var processErr *utils.ProcessError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &processErr):
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// relayPrediction forwards the predictor's JSON verbatim, choosing the
// status code from the predictor's own success flag.
func relayPrediction(c *gin.Context, prediction models.Prediction) {
	if prediction.Success() {
		c.JSON(http.StatusOK, prediction)
		return
	}
	c.JSON(http.StatusInternalServerError, prediction)
}
