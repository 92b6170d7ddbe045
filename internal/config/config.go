package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Server      ServerConfig    `mapstructure:"server"`
	Predictor   PredictorConfig `mapstructure:"predictor"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// PredictorConfig describes how the external Python predictor is reached.
// Everything except the interpreter binary is a path relative to the
// deployment root.
type PredictorConfig struct {
	PythonBin     string `mapstructure:"python_bin"`
	Script        string `mapstructure:"script"`
	ModelPath     string `mapstructure:"model_path"`
	ForecastsDir  string `mapstructure:"forecasts_dir"`
	Timeout       string `mapstructure:"timeout"`
	MaxConcurrent int    `mapstructure:"max_concurrent"`
	MaxUploadMB   int64  `mapstructure:"max_upload_mb"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The interpreter is selected by environment variable in deployments
	if err := viper.BindEnv("predictor.python_bin", "PYTHON_BIN"); err != nil {
		return nil, fmt.Errorf("failed to bind PYTHON_BIN environment variable: %w", err)
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Environment = strings.ToLower(config.Environment)

	if _, err := time.ParseDuration(config.Predictor.Timeout); err != nil {
		return nil, fmt.Errorf("invalid predictor timeout duration: %w", err)
	}
	if config.Predictor.MaxConcurrent < 1 {
		return nil, fmt.Errorf("predictor max_concurrent must be at least 1, got %d", config.Predictor.MaxConcurrent)
	}
	if config.Predictor.MaxUploadMB < 1 {
		return nil, fmt.Errorf("predictor max_upload_mb must be at least 1, got %d", config.Predictor.MaxUploadMB)
	}

	return &config, nil
}

// PredictorTimeout returns the parsed timeout. Load has already validated
// the duration string.
func (c *Config) PredictorTimeout() time.Duration {
	d, err := time.ParseDuration(c.Predictor.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	// Server
	viper.SetDefault("server.port", 8080)

	// Predictor
	viper.SetDefault("predictor.python_bin", "python3")
	viper.SetDefault("predictor.script", "python/predict.py")
	viper.SetDefault("predictor.model_path", "python/hf_blackout_model.pkl")
	viper.SetDefault("predictor.forecasts_dir", "data/forecasts")
	viper.SetDefault("predictor.timeout", "120s")
	viper.SetDefault("predictor.max_concurrent", 8)
	viper.SetDefault("predictor.max_upload_mb", 10)
}
