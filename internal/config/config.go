// Package config handles configuration loading and management for caseview.
// It supports XDG config paths, project-level overrides, and environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"caseview/pkg/models"
)

// Config holds all configuration for caseview.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine" yaml:"engine"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Steps   []StepConfig  `mapstructure:"steps" yaml:"steps"`
	State   StateConfig   `mapstructure:"state" yaml:"state"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// EngineConfig holds processing-engine settings.
type EngineConfig struct {
	// Environment is the default backend environment.
	Environment string `mapstructure:"environment" yaml:"environment"`
	// ClientID pre-fills the credential form.
	ClientID string `mapstructure:"client_id" yaml:"client_id"`
	// SimulatorPace scales the simulator's per-step delays.
	SimulatorPace float64 `mapstructure:"simulator_pace" yaml:"simulator_pace"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	// RefreshRate is the tick interval for the progress sampler and the
	// token countdown.
	RefreshRate time.Duration `mapstructure:"refresh_rate" yaml:"refresh_rate"`
	// ExportDir is where result files are written. Empty means the
	// current directory.
	ExportDir string `mapstructure:"export_dir" yaml:"export_dir"`
}

// StepConfig declares one processing step. Order in the list is ordinal
// position.
type StepConfig struct {
	ID          string `mapstructure:"id" yaml:"id"`
	Label       string `mapstructure:"label" yaml:"label"`
	EstimatedMS int    `mapstructure:"estimated_ms" yaml:"estimated_ms"`
}

// StateConfig holds durable-state settings.
type StateConfig struct {
	// DBPath overrides the default database location.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`
}

// LoggingConfig holds debug logging settings.
type LoggingConfig struct {
	// DebugLog is the debug log file path. Empty disables logging.
	DebugLog string `mapstructure:"debug_log" yaml:"debug_log"`
}

// StepSpecs converts the configured step list into the model form, falling
// back to the built-in sequence when no steps are configured.
func (c *Config) StepSpecs() []models.StepSpec {
	if len(c.Steps) == 0 {
		return models.DefaultSteps()
	}
	specs := make([]models.StepSpec, 0, len(c.Steps))
	for _, s := range c.Steps {
		label := s.Label
		if label == "" {
			label = s.ID
		}
		specs = append(specs, models.StepSpec{
			Step:      models.ProcessingStep(s.ID),
			Label:     label,
			Estimated: time.Duration(s.EstimatedMS) * time.Millisecond,
		})
	}
	return specs
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables. Precedence (highest to lowest):
// 1. Environment variables (CASEVIEW_*)
// 2. Project config (.caseview.yaml in the current directory or a parent)
// 3. User config (~/.config/caseview/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Project config takes precedence over the user config.
	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("CASEVIEW")
	v.AutomaticEnv()
	v.BindEnv("engine.environment", "CASEVIEW_ENVIRONMENT")
	v.BindEnv("engine.client_id", "CASEVIEW_CLIENT_ID")
	v.BindEnv("logging.debug_log", "CASEVIEW_DEBUG_LOG")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Watch re-reads the user config file whenever it changes on disk and
// passes the fresh configuration to onChange. Load errors during a reload
// are dropped; the previous configuration stays in effect.
func Watch(onChange func(*Config)) error {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading user config: %w", err)
		}
		// Nothing to watch without a config file.
		return nil
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg := &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it
// exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.environment", "staging")
	v.SetDefault("engine.client_id", "")
	v.SetDefault("engine.simulator_pace", 0.25)
	v.SetDefault("tui.refresh_rate", time.Second)
	v.SetDefault("tui.export_dir", "")
	v.SetDefault("state.db_path", "")
	v.SetDefault("logging.debug_log", "")
}

// getUserConfigDir returns the XDG config directory for caseview.
func getUserConfigDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "caseview")
}

// findProjectConfig walks up from the current directory looking for a
// .caseview.yaml file.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ".caseview.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
