package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(handler *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handler.HealthCheck)
	return router
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name         string
		createModel  bool
		createScript bool
		wantCode     int
		wantStatus   string
	}{
		{
			name:         "model and script present",
			createModel:  true,
			createScript: true,
			wantCode:     http.StatusOK,
			wantStatus:   "healthy",
		},
		{
			name:         "model missing",
			createModel:  false,
			createScript: true,
			wantCode:     http.StatusServiceUnavailable,
			wantStatus:   "unhealthy",
		},
		{
			name:         "script missing",
			createModel:  true,
			createScript: false,
			wantCode:     http.StatusServiceUnavailable,
			wantStatus:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			dir := t.TempDir()
			cfg.Predictor.ModelPath = filepath.Join(dir, "hf_blackout_model.pkl")
			cfg.Predictor.Script = filepath.Join(dir, "predict.py")

			if tt.createModel {
				require.NoError(t, os.WriteFile(cfg.Predictor.ModelPath, []byte("model"), 0o644))
			}
			if tt.createScript {
				require.NoError(t, os.WriteFile(cfg.Predictor.Script, []byte("# predictor"), 0o644))
			}

			router := newHealthRouter(NewHealthHandler(cfg))

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/health", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.NotEmpty(t, body["timestamp"])
			assert.NotEmpty(t, body["model"])
			assert.NotEmpty(t, body["python"])

			system, ok := body["system"].(map[string]interface{})
			require.True(t, ok)
			assert.GreaterOrEqual(t, system["goroutines"], 1.0)
		})
	}
}
