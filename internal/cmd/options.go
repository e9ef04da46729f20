package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/agentpulse/internal/config"
	"github.com/harrison/agentpulse/internal/logger"
)

// addCommonFlags registers the flags shared by every artifact command.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: "+config.DefaultConfigPath+")")
	cmd.Flags().String("data-dir", "", "Directory for JSON artifacts (overrides config)")
	cmd.Flags().Bool("verbose", false, "Show detailed progress")
}

// loadConfig resolves configuration for a command: file, then environment,
// then the shared flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newLogger builds the console logger for a command run.
func newLogger(cfg *config.Config) *logger.ConsoleLogger {
	return logger.NewConsoleLogger(os.Stdout, cfg.LogLevel)
}
