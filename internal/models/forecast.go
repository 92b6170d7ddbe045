package models

import (
	"github.com/solarwatch/blackout-api/internal/utils"
)

// ForecastInput is one forecast record handed to the external predictor.
// The timestamp is passed through uninterpreted; the predictor owns its
// parsing. FlareProbability is a pointer so that an explicit 0 binds as
// present.
type ForecastInput struct {
	Datetime         string   `json:"datetime"`
	FlareProbability *float64 `json:"flare_probability"`
}

// BatchPredictRequest is the body of a JSON batch prediction.
type BatchPredictRequest struct {
	Forecasts []ForecastInput `json:"forecasts"`
}

// Validate checks the record's required fields and range.
func (f *ForecastInput) Validate() error {
	if f.Datetime == "" {
		return utils.NewValidationError("datetime is required")
	}
	if f.FlareProbability == nil {
		return utils.NewValidationError("flare_probability is required")
	}
	if *f.FlareProbability < 0 || *f.FlareProbability > 1 {
		return utils.NewValidationErrorf("flare_probability must be between 0 and 1, got %g", *f.FlareProbability)
	}
	return nil
}

// Validate checks every record before any external work begins. The first
// invalid record aborts the whole batch.
func (r *BatchPredictRequest) Validate() error {
	if len(r.Forecasts) == 0 {
		return utils.NewValidationError("forecasts must be a non-empty array")
	}
	for i := range r.Forecasts {
		if err := r.Forecasts[i].Validate(); err != nil {
			return utils.NewValidationErrorf("forecast %d: %s", i, err.Error())
		}
	}
	return nil
}

// Prediction is the predictor's JSON output, relayed verbatim. The façade
// only inspects the success flag to choose a status code.
type Prediction map[string]interface{}

// Success reports whether the predictor marked its own result successful.
func (p Prediction) Success() bool {
	ok, _ := p["success"].(bool)
	return ok
}

// ErrorMessage returns the predictor's own error text, if any.
func (p Prediction) ErrorMessage() string {
	msg, _ := p["error"].(string)
	return msg
}
