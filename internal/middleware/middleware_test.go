package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarwatch/blackout-api/internal/logging"
)

func TestRecoveryReturnsStructuredError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.NewStandardLogger("error")

	router := gin.New()
	router.Use(Recovery(logger))
	router.GET("/boom", func(c *gin.Context) {
		panic("something went sideways")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/boom", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "something went sideways", body["error"])
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.NewStandardLogger("error")

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}
