package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DateLayout is the format for the -from / -to window bounds.
const DateLayout = "2006-01-02"

const (
	DefaultInitialBalance = 25000.0
	DefaultOutputDir      = "results"
	DefaultSmoothSamples  = 10000
)

// Config holds one analyzer run: where the ledger comes from, the
// account's starting balance, the optional analysis window and the
// output targets.
type Config struct {
	DataFile       string  `json:"data_file"`
	TimeLayout     string  `json:"time_layout,omitempty"`
	InitialBalance float64 `json:"initial_balance"`
	SmoothSamples  int     `json:"smooth_samples,omitempty"`

	// Analysis window, inclusive; empty means unbounded on that side
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	OutputDir   string `json:"output_dir,omitempty"`
	ConsoleOnly bool   `json:"console_only,omitempty"`
}

// NewDefaultConfig returns a config with defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		InitialBalance: DefaultInitialBalance,
		SmoothSamples:  DefaultSmoothSamples,
		OutputDir:      DefaultOutputDir,
	}
}

// LoadConfig builds the run configuration: defaults, then the JSON
// config file (if given), then validation. Flag overrides are applied
// by the caller before Validate.
func LoadConfig(configFile string) (*Config, error) {
	cfg := NewDefaultConfig()
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	return cfg, nil
}

func loadFromFile(configFile string, cfg *Config) error {
	payload, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	if err := json.Unmarshal(payload, cfg); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}
	return nil
}

// Validate checks the configuration before the pipeline runs.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data file is required")
	}
	if c.InitialBalance <= 0 {
		return fmt.Errorf("initial balance must be positive, got %.2f", c.InitialBalance)
	}
	if c.SmoothSamples < 2 {
		return fmt.Errorf("smooth samples must be at least 2, got %d", c.SmoothSamples)
	}

	from, to, err := c.Window()
	if err != nil {
		return err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return fmt.Errorf("analysis window ends (%s) before it starts (%s)", c.To, c.From)
	}
	return nil
}

// Window parses the analysis window bounds. The To bound covers the
// whole named day.
func (c *Config) Window() (from, to time.Time, err error) {
	if c.From != "" {
		from, err = time.Parse(DateLayout, c.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q: %w", c.From, err)
		}
	}
	if c.To != "" {
		to, err = time.Parse(DateLayout, c.To)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q: %w", c.To, err)
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
