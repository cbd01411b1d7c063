package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete pipeline configuration
type Config struct {
	Panel    PanelConfig    `yaml:"panel" envconfig:"PANEL"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// PanelConfig controls panel assembly and cleaning
type PanelConfig struct {
	StartYear         int      `yaml:"start_year" envconfig:"START_YEAR" default:"2010" validate:"required,min=1980,max=2100"`
	EndYear           int      `yaml:"end_year" envconfig:"END_YEAR" default:"2015" validate:"required,gtefield=StartYear,max=2100"`
	BalancedPanel     bool     `yaml:"balanced_panel" envconfig:"BALANCED_PANEL" default:"true"`
	UndergraduateOnly bool     `yaml:"undergraduate_only" envconfig:"UNDERGRADUATE_ONLY" default:"true"`
	ExcludeStates     []string `yaml:"exclude_states" envconfig:"EXCLUDE_STATES" default:"DC,FM,MH,MP,PR,PW,VI,GU,AS" validate:"dive,len=2,alpha"`
}

// AnalysisConfig controls the grant-report analysis run
type AnalysisConfig struct {
	Year             int      `yaml:"year" envconfig:"YEAR" default:"2015" validate:"required,min=1980,max=2100"`
	FormulaLinear    float64  `yaml:"formula_linear" envconfig:"FORMULA_LINEAR" default:"1750"`
	FormulaQuadratic float64  `yaml:"formula_quadratic" envconfig:"FORMULA_QUADRATIC" default:"0.15"`
	CompareStates    []string `yaml:"compare_states" envconfig:"COMPARE_STATES" default:"NY,VT" validate:"len=2,dive,len=2,alpha"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// Load loads configuration from environment variables and an optional
// YAML config file. Environment variables use the IPEDS prefix; file
// values override environment values, matching how a pipeline run is
// usually pinned to one committed config.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("IPEDS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile merges YAML file values into cfg
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks configuration invariants before any data is touched
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Formula returns the two simulation coefficients, linear then quadratic.
func (a AnalysisConfig) Formula() (float64, float64) {
	return a.FormulaLinear, a.FormulaQuadratic
}
