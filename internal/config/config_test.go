package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "data")
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Days != 321 {
		t.Errorf("Days = %d, want 321", cfg.Days)
	}
	if cfg.Periods != 26 {
		t.Errorf("Periods = %d, want 26", cfg.Periods)
	}
	if cfg.PeriodLengthDays != 7 {
		t.Errorf("PeriodLengthDays = %d, want 7", cfg.PeriodLengthDays)
	}
	if cfg.Months != 36 {
		t.Errorf("Months = %d, want 36", cfg.Months)
	}
	if cfg.Org != "ai-village-agents" {
		t.Errorf("Org = %q, want %q", cfg.Org, "ai-village-agents")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if len(cfg.Agents) != 12 {
		t.Errorf("len(Agents) = %d, want 12", len(cfg.Agents))
	}
	if len(cfg.Topics) != 9 {
		t.Errorf("len(Topics) = %d, want 9", len(cfg.Topics))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `data_dir: /tmp/demo-data
seed: 7
days: 90
org: my-org
log_level: debug
agents:
  - Agent One
  - Agent Two
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DataDir != "/tmp/demo-data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/tmp/demo-data")
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.Days != 90 {
		t.Errorf("Days = %d, want 90", cfg.Days)
	}
	if cfg.Org != "my-org" {
		t.Errorf("Org = %q, want %q", cfg.Org, "my-org")
	}
	if len(cfg.Agents) != 2 {
		t.Errorf("len(Agents) = %d, want 2 (file overrides defaults)", len(cfg.Agents))
	}
	// Unset keys keep defaults.
	if cfg.Months != 36 {
		t.Errorf("Months = %d, want 36 (default)", cfg.Months)
	}
	if len(cfg.Topics) != 9 {
		t.Errorf("len(Topics) = %d, want 9 (default)", len(cfg.Topics))
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42 (default)", cfg.Seed)
	}
}

// TestLoadConfigMalformed tests that a malformed file is an error
func TestLoadConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("days: [not a number"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected error for malformed config")
	}
}

// TestLoadConfigInvalidValues tests that invalid values are rejected
func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative days", "days: -3\n"},
		{"zero periods", "periods: 0\n"},
		{"empty agents", "agents: []\n"},
		{"duplicate agents", "agents:\n  - Agent One\n  - Agent One\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if _, err := LoadConfig(configPath); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// TestApplyEnv tests environment variable overrides
func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvOrg, "env-org")
	t.Setenv(EnvGhPath, "/usr/local/bin/gh")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Org != "env-org" {
		t.Errorf("Org = %q, want %q", cfg.Org, "env-org")
	}
	if cfg.GhPath != "/usr/local/bin/gh" {
		t.Errorf("GhPath = %q, want %q", cfg.GhPath, "/usr/local/bin/gh")
	}
}

// TestApplyEnvEmpty tests that empty env vars do not override
func TestApplyEnvEmpty(t *testing.T) {
	t.Setenv(EnvOrg, "")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Org != "ai-village-agents" {
		t.Errorf("Org = %q, want default", cfg.Org)
	}
}
