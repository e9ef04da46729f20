package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/agentpulse/internal/dataset"
	"github.com/harrison/agentpulse/internal/filelock"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the synthetic demo artifacts",
		Long: `Generate the five synthetic JSON artifacts from deterministic
statistical models: daily contributions, agent activity, the collaboration
network, topic evolution and historical trends.

Every artifact is regenerated and overwritten wholesale. Given the same
seed the output is byte-identical apart from the anchor date, which
defaults to today.

Examples:
  agentpulse generate
  agentpulse generate --days 90 --seed 7
  agentpulse generate --data-dir ./demo-data`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	addCommonFlags(cmd)
	cmd.Flags().Int64("seed", -1, "Base random seed (overrides config)")
	cmd.Flags().Int("days", 0, "Daily contribution window in days (overrides config)")
	cmd.Flags().Int("periods", 0, "Topic evolution period count (overrides config)")
	cmd.Flags().Int("months", 0, "Historical trend month count (overrides config)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed >= 0 {
		cfg.Seed = seed
	}
	if days, _ := cmd.Flags().GetInt("days"); days > 0 {
		cfg.Days = days
	}
	if periods, _ := cmd.Flags().GetInt("periods"); periods > 0 {
		cfg.Periods = periods
	}
	if months, _ := cmd.Flags().GetInt("months"); months > 0 {
		cfg.Months = months
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg)
	now := time.Now()

	lock, err := filelock.LockDir(cfg.DataDir)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	log.Debugf("generating with seed %d into %s", cfg.Seed, cfg.DataDir)

	artifacts := []struct {
		name string
		data any
	}{
		{dataset.DailyContributionsFile,
			dataset.GenerateDailyContributions(dataset.NewSource(cfg.Seed, dataset.SeedOffsetDaily), cfg.Days, now)},
		{dataset.AgentActivityFile,
			dataset.GenerateAgentActivity(dataset.NewSource(cfg.Seed, dataset.SeedOffsetAgents), cfg.Agents)},
		{dataset.CollaborationNetworkFile,
			dataset.GenerateCollaborationNetwork(dataset.NewSource(cfg.Seed, dataset.SeedOffsetNetwork), cfg.Agents)},
		{dataset.TopicEvolutionFile,
			dataset.GenerateTopicEvolution(dataset.NewSource(cfg.Seed, dataset.SeedOffsetTopics), cfg.Topics, cfg.Periods, cfg.PeriodLengthDays, now)},
		{dataset.HistoricalTrendsFile,
			dataset.GenerateHistoricalTrends(dataset.NewSource(cfg.Seed, dataset.SeedOffsetTrends), cfg.Months, now)},
	}

	for _, artifact := range artifacts {
		if err := dataset.WriteArtifact(cfg.DataDir, artifact.name, artifact.data); err != nil {
			return err
		}
		log.Infof("wrote %s", artifact.name)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d artifacts in %s\n", len(artifacts), cfg.DataDir)
	return nil
}
