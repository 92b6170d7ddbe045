package logging

import (
	"log/slog"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, getSlogLevel(tt.level))
		})
	}
}

func TestParseLogrusLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"anything", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogrusLevel(tt.level))
		})
	}
}

func TestStandardLoggerContexts(t *testing.T) {
	logger := NewStandardLogger("info")

	assert.NotNil(t, logger.Logger())
	assert.NotNil(t, logger.WithComponent("predictor"))
	assert.NotNil(t, logger.WithOperation("predict_batch"))
	assert.NotNil(t, logger.WithError(assert.AnError))
}
