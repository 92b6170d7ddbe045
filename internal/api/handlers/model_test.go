package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/solarwatch/blackout-api/internal/models"
	"github.com/solarwatch/blackout-api/internal/utils"
)

func newModelRouter(runner PredictorRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewModelHandler(runner)
	router := gin.New()
	router.GET("/model/info", handler.ModelInfo)
	return router
}

func TestModelInfoSuccess(t *testing.T) {
	mockRunner := &MockRunner{}
	mockRunner.On("Run", mock.Anything, []string{"info"}).
		Return(models.Prediction{
			"model_type":    "GradientBoostingClassifier",
			"feature_count": 9.0,
		}, nil)

	router := newModelRouter(mockRunner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/model/info", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	model, ok := body["model"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "GradientBoostingClassifier", model["model_type"])
	mockRunner.AssertExpectations(t)
}

func TestModelInfoFailure(t *testing.T) {
	mockRunner := &MockRunner{}
	mockRunner.On("Run", mock.Anything, mock.Anything).
		Return(nil, utils.NewProcessError("predictor exited with code 1", "cannot unpickle model"))

	router := newModelRouter(mockRunner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/model/info", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "cannot unpickle model", body["error"])
}

func TestRootDocumentation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", Root)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Solar Blackout Prediction API", body["service"])
	assert.NotEmpty(t, body["endpoints"])
	assert.NotEmpty(t, body["risk_levels"])
}
