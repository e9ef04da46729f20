package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/agentpulse/internal/config"
	"github.com/harrison/agentpulse/internal/dataset"
	"github.com/harrison/agentpulse/internal/models"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the generated artifacts",
		Long: `Load the generated artifacts and check their invariants:
  - Every total equals the sum of its sub-categories
  - Counts respect their documented floors
  - Network edges are sorted, weighted above 1, with no self-loops
  - The agent sets of agent_activity.json and collaboration_network.json
    match exactly (the two files join on the agent name)

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return validateArtifacts(cfg, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	addCommonFlags(cmd)
	return cmd
}

// validateArtifacts runs every artifact check, printing findings to output.
func validateArtifacts(cfg *config.Config, output io.Writer) error {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	var agents []models.AgentActivity
	agentsLoaded := false
	if err := dataset.ReadArtifact(cfg.DataDir, dataset.AgentActivityFile, &agents); err != nil {
		report("%v", err)
	} else {
		agentsLoaded = true
		for i := range agents {
			if err := agents[i].Validate(); err != nil {
				report("%s: %v", dataset.AgentActivityFile, err)
			}
		}
	}

	var network models.Network
	networkLoaded := false
	if err := dataset.ReadArtifact(cfg.DataDir, dataset.CollaborationNetworkFile, &network); err != nil {
		report("%v", err)
	} else {
		networkLoaded = true
		if err := network.Validate(); err != nil {
			report("%s: %v", dataset.CollaborationNetworkFile, err)
		}
	}

	// The two artifacts join on the agent name; a divergence would fail
	// silently downstream, so surface it here.
	if agentsLoaded && networkLoaded {
		activityNames := models.AgentNames(agents)
		networkNames := network.AgentIDs()
		if !equalStrings(activityNames, networkNames) {
			report("agent sets diverge: %s has %v, %s has %v",
				dataset.AgentActivityFile, activityNames,
				dataset.CollaborationNetworkFile, networkNames)
		}
	}

	var daily []models.DailyContribution
	if err := dataset.ReadArtifact(cfg.DataDir, dataset.DailyContributionsFile, &daily); err != nil {
		report("%v", err)
	} else {
		for i := range daily {
			if err := daily[i].Validate(); err != nil {
				report("%s: %v", dataset.DailyContributionsFile, err)
			}
		}
	}

	var topics []models.TopicVolume
	if err := dataset.ReadArtifact(cfg.DataDir, dataset.TopicEvolutionFile, &topics); err != nil {
		report("%v", err)
	} else {
		for i := range topics {
			if err := topics[i].Validate(cfg.PeriodLengthDays); err != nil {
				report("%s: %v", dataset.TopicEvolutionFile, err)
			}
		}
	}

	var trends []models.MonthlyTrend
	if err := dataset.ReadArtifact(cfg.DataDir, dataset.HistoricalTrendsFile, &trends); err != nil {
		report("%v", err)
	} else {
		for i := range trends {
			if err := trends[i].Validate(); err != nil {
				report("%s: %v", dataset.HistoricalTrendsFile, err)
			}
		}
	}

	if len(problems) > 0 {
		for _, problem := range problems {
			fmt.Fprintf(output, "✗ %s\n", problem)
		}
		return fmt.Errorf("validation failed with %d problem(s)", len(problems))
	}

	fmt.Fprintf(output, "✓ Artifacts in %s are valid\n", cfg.DataDir)
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
