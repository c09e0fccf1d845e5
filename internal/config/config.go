// Package config loads settings for the adjoint command.
//
// Priority, highest first: environment variables, YAML file, defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/adjoint/internal/optim"
	"github.com/born-ml/adjoint/internal/parallel"
)

var validate = validator.New()

// Config is the top-level configuration.
type Config struct {
	// Minimizer contains line-search policy settings.
	Minimizer MinimizerConfig `yaml:"minimizer" json:"minimizer"`

	// Parallel bounds concurrent multi-start runs.
	Parallel ParallelConfig `yaml:"parallel" json:"parallel"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log" json:"log"`

	// Metrics contains metrics export settings.
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// MinimizerConfig mirrors the numeric fields of optim.Config.
type MinimizerConfig struct {
	MaxIter            int     `yaml:"max_iter" json:"max_iter" validate:"gt=0"`
	Tolerance          float64 `yaml:"tolerance" json:"tolerance" validate:"gt=0"`
	SufficientDecrease float64 `yaml:"sufficient_decrease" json:"sufficient_decrease" validate:"gt=0,lt=1"`
	Grow               float64 `yaml:"grow" json:"grow" validate:"gte=1"`
	Shrink             float64 `yaml:"shrink" json:"shrink" validate:"gt=0,lt=1"`
	InitialStep        float64 `yaml:"initial_step" json:"initial_step" validate:"gt=0"`
}

// ParallelConfig bounds concurrent multi-start runs.
type ParallelConfig struct {
	// Workers is the maximum number of concurrent runs. 0 means one per CPU.
	Workers int `yaml:"workers" json:"workers" validate:"gte=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" json:"format" validate:"oneof=text json"`
}

// MetricsConfig contains metrics export settings.
type MetricsConfig struct {
	// Textfile, when set, receives the Prometheus text exposition after a run.
	Textfile string `yaml:"textfile" json:"textfile"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Minimizer: MinimizerConfig{
			MaxIter:            optim.DefaultMaxIter,
			Tolerance:          optim.DefaultTolerance,
			SufficientDecrease: optim.DefaultSufficientDecrease,
			Grow:               optim.DefaultGrow,
			Shrink:             optim.DefaultShrink,
			InitialStep:        optim.DefaultInitialStep,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration with priority: env > file > defaults.
//
// An empty path or a missing file leaves the defaults in place. A file that
// exists but does not parse, or a final configuration that fails validation,
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	ints := map[string]*int{
		"ADJOINT_MAX_ITER": &cfg.Minimizer.MaxIter,
		"ADJOINT_WORKERS":  &cfg.Parallel.Workers,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = i
		}
	}

	floats := map[string]*float64{
		"ADJOINT_TOLERANCE":           &cfg.Minimizer.Tolerance,
		"ADJOINT_SUFFICIENT_DECREASE": &cfg.Minimizer.SufficientDecrease,
		"ADJOINT_GROW":                &cfg.Minimizer.Grow,
		"ADJOINT_SHRINK":              &cfg.Minimizer.Shrink,
		"ADJOINT_INITIAL_STEP":        &cfg.Minimizer.InitialStep,
	}
	for key, dst := range floats {
		if v := os.Getenv(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = f
		}
	}

	if v := os.Getenv("ADJOINT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("ADJOINT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv("ADJOINT_METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Textfile = v
	}
	return nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// OptimConfig converts the minimizer section into an optim.Config.
func (c Config) OptimConfig(logger *slog.Logger, metrics *optim.Metrics) optim.Config {
	return optim.Config{
		MaxIter:            c.Minimizer.MaxIter,
		Tolerance:          c.Minimizer.Tolerance,
		SufficientDecrease: c.Minimizer.SufficientDecrease,
		Grow:               c.Minimizer.Grow,
		Shrink:             c.Minimizer.Shrink,
		InitialStep:        c.Minimizer.InitialStep,
		Logger:             logger,
		Metrics:            metrics,
	}
}

// ParallelConfig converts the parallel section into a parallel.Config.
func (c Config) ParallelConfig() parallel.Config {
	pc := parallel.DefaultConfig()
	if c.Parallel.Workers > 0 {
		pc.NumWorkers = c.Parallel.Workers
		pc.Enabled = c.Parallel.Workers > 1
	}
	return pc
}

// NewLogger builds a slog.Logger writing to w according to the log section.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
