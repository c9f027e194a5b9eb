// Package config loads the tubepath YAML configuration, applies defaults and
// validates it.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tubepath/apsp"
	"github.com/katalvlaran/tubepath/internal/loader"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full file layout.
type Config struct {
	Network   NetworkConfig   `yaml:"network"`
	Solver    string          `yaml:"solver" validate:"solver"`
	Workers   int             `yaml:"workers" validate:"gte=0"`
	Histogram HistogramConfig `yaml:"histogram"`
	Closures  [][]string      `yaml:"closures" validate:"dive,len=2,dive,required"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// NetworkConfig describes the edge-list source and how to build the graph.
type NetworkConfig struct {
	CSV      string         `yaml:"csv" validate:"required"`
	Directed bool           `yaml:"directed"`
	Weighted bool           `yaml:"weighted"`
	Simple   bool           `yaml:"simple"`
	Columns  loader.Columns `yaml:"columns"`
}

// HistogramConfig controls distribution rendering.
type HistogramConfig struct {
	Bins        int  `yaml:"bins" validate:"gte=1,lte=1000"`
	Width       int  `yaml:"width" validate:"gte=1,lte=500"`
	IncludeSelf bool `yaml:"include_self"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// TelemetryConfig enables span export and the metrics textfile.
type TelemetryConfig struct {
	Trace       bool   `yaml:"trace"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Network: NetworkConfig{
			CSV:      "london_underground_graph.csv",
			Weighted: true,
			Simple:   true,
			Columns:  loader.DefaultColumns(),
		},
		Solver:    "dijkstra",
		Histogram: HistogramConfig{Bins: 30, Width: 50},
		Closures:  DefaultClosures(),
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

var validate = newValidator()

// newValidator registers the "solver" tag, which accepts every spelling
// apsp.ParseSolver does.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("solver", func(fl validator.FieldLevel) bool {
		_, err := apsp.ParseSolver(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s fails %q", ErrInvalid, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !c.Network.Weighted || c.Network.Columns.Weight != "" {
		return nil
	}

	return fmt.Errorf("%w: network.columns.weight is required for weighted graphs", ErrInvalid)
}
