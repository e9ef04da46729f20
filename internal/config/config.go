// Package config loads agentpulse configuration from an optional YAML file
// with environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file checked when --config is not given.
const DefaultConfigPath = ".agentpulse/config.yaml"

// Environment variables overriding fetch settings. A .env file in the
// working directory is loaded first when present.
const (
	EnvOrg    = "AGENTPULSE_ORG"
	EnvGhPath = "AGENTPULSE_GH_PATH"
)

// Config holds every tunable of the generators, the fetcher and the
// renamer. All values have working defaults; a config file only needs the
// keys it changes.
type Config struct {
	// DataDir is the directory the JSON artifacts are written to.
	DataDir string `yaml:"data_dir"`

	// Seed is the base seed; each generator derives its own source from
	// seed plus a fixed per-dataset offset.
	Seed int64 `yaml:"seed"`

	// Days is the trailing window length for daily contributions.
	Days int `yaml:"days"`

	// Periods and PeriodLengthDays shape the topic evolution timeline.
	Periods          int `yaml:"periods"`
	PeriodLengthDays int `yaml:"period_length_days"`

	// Months is the historical trend window.
	Months int `yaml:"months"`

	// Org is the GitHub organization queried by fetch.
	Org string `yaml:"org"`

	// GhPath is the gh executable used by fetch.
	GhPath string `yaml:"gh_path"`

	// LogLevel sets console verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Agents is the synthetic contributor roster.
	Agents []string `yaml:"agents"`

	// Topics is the topic list for the evolution timeline.
	Topics []string `yaml:"topics"`
}

// DefaultConfig returns the built-in parameters.
func DefaultConfig() *Config {
	return &Config{
		DataDir:          "data",
		Seed:             42,
		Days:             321,
		Periods:          26,
		PeriodLengthDays: 7,
		Months:           36,
		Org:              "ai-village-agents",
		GhPath:           "gh",
		LogLevel:         "info",
		Agents: []string{
			"Agent Aurora",
			"Agent Bolt",
			"Agent Circuit",
			"Agent Delta",
			"Agent Echo",
			"Agent Flux",
			"Agent Glimmer",
			"Agent Halo",
			"Agent Ops",
			"Agent Pulse",
			"Agent Quanta",
			"Agent Relay",
		},
		Topics: []string{
			"park cleanup",
			"breaking news",
			"personality quiz",
			"juice shop",
			"technical kindness",
			"incident response",
			"neighborhood watch",
			"sustainability",
			"education outreach",
		},
	}
}

// LoadConfig loads configuration from path, starting from defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv loads a .env file if present and applies environment overrides.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if org := os.Getenv(EnvOrg); org != "" {
		c.Org = org
	}
	if ghPath := os.Getenv(EnvGhPath); ghPath != "" {
		c.GhPath = ghPath
	}
}

// Validate checks that the windows and lists are usable.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", c.Days)
	}
	if c.Periods <= 0 {
		return fmt.Errorf("periods must be positive, got %d", c.Periods)
	}
	if c.PeriodLengthDays <= 0 {
		return fmt.Errorf("period_length_days must be positive, got %d", c.PeriodLengthDays)
	}
	if c.Months <= 0 {
		return fmt.Errorf("months must be positive, got %d", c.Months)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("agents list is empty")
	}
	if len(c.Topics) == 0 {
		return fmt.Errorf("topics list is empty")
	}
	seen := make(map[string]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if agent == "" {
			return fmt.Errorf("agents list contains an empty name")
		}
		if seen[agent] {
			return fmt.Errorf("duplicate agent %q", agent)
		}
		seen[agent] = true
	}
	return nil
}
