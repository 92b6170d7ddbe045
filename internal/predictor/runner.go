package predictor

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/solarwatch/blackout-api/internal/config"
	"github.com/solarwatch/blackout-api/internal/models"
	"github.com/solarwatch/blackout-api/internal/utils"
)

// Runner invokes the external predictor as a child process, one process
// per call. Calls are bounded by a concurrency cap and a per-call
// timeout; a hung predictor fails the call instead of hanging it forever.
type Runner struct {
	pythonBin string
	script    string
	timeout   time.Duration
	slots     chan struct{}
	logger    *logrus.Logger
}

// NewRunner creates a runner from the predictor configuration.
func NewRunner(cfg *config.Config, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
	}
	return &Runner{
		pythonBin: cfg.Predictor.PythonBin,
		script:    cfg.Predictor.Script,
		timeout:   cfg.PredictorTimeout(),
		slots:     make(chan struct{}, cfg.Predictor.MaxConcurrent),
		logger:    logger,
	}
}

// Run executes `<python_bin> <script> <args...>`, collects stdout and
// stderr until the process exits, and returns the parsed JSON object from
// stdout when the exit code is zero. Any failure mode (start failure,
// nonzero exit, timeout, unparsable output) is returned as a ProcessError.
func (r *Runner) Run(ctx context.Context, args ...string) (models.Prediction, error) {
	select {
	case r.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, utils.NewProcessErrorf("predictor invocation canceled while waiting for a slot: %v", ctx.Err())
	}
	defer func() { <-r.slots }()

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.pythonBin, append([]string{r.script}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	entry := r.logger.WithFields(logrus.Fields{
		"args":        args,
		"duration_ms": elapsed.Milliseconds(),
	})

	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			entry.Warn("Predictor timed out")
			return nil, utils.NewProcessErrorf("predictor timed out after %s", r.timeout)
		}
		var startErr *exec.Error
		if errors.As(err, &startErr) {
			entry.WithError(err).Error("Failed to start predictor")
			return nil, utils.NewProcessErrorf("failed to start predictor %q: %v", r.pythonBin, err)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			entry.WithField("exit_code", exitErr.ExitCode()).Warn("Predictor exited with failure")
			return nil, utils.NewProcessError(
				fmt.Sprintf("predictor exited with code %d", exitErr.ExitCode()),
				strings.TrimSpace(stderr.String()),
			)
		}
		entry.WithError(err).Error("Predictor invocation failed")
		return nil, utils.NewProcessErrorf("predictor invocation failed: %v", err)
	}

	var prediction models.Prediction
	if err := json.Unmarshal(stdout.Bytes(), &prediction); err != nil {
		entry.WithError(err).Error("Predictor produced unparsable output")
		return nil, utils.NewProcessErrorf("failed to parse predictor output: %v", err)
	}

	entry.Debug("Predictor call completed")
	return prediction, nil
}

// StageBatch writes validated forecast records to a uniquely named
// temporary CSV in the layout the predictor's batch mode reads. It
// returns the file path and a cleanup func that removes the file; cleanup
// is safe to call more than once.
func StageBatch(forecasts []models.ForecastInput) (string, func(), error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("forecast_batch_%s.csv", uuid.New().String()))

	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create batch file: %w", err)
	}

	w := csv.NewWriter(f)
	records := make([][]string, 0, len(forecasts)+1)
	records = append(records, []string{"DateTime", "flare_probability"})
	for _, fc := range forecasts {
		records = append(records, []string{
			fc.Datetime,
			strconv.FormatFloat(*fc.FlareProbability, 'g', -1, 64),
		})
	}
	writeErr := w.WriteAll(records)
	closeErr := f.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(path)
		if writeErr != nil {
			return "", nil, fmt.Errorf("failed to write batch file: %w", writeErr)
		}
		return "", nil, fmt.Errorf("failed to write batch file: %w", closeErr)
	}

	cleanup := func() { _ = os.Remove(path) }
	return path, cleanup, nil
}
