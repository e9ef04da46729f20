// Package cmd wires the agentpulse subcommands.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for agentpulse
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agentpulse",
		Short: "Demo contribution dataset toolkit",
		Long: `Agentpulse produces the demo datasets behind the agent contribution
dashboard: daily totals, per-agent activity, a collaboration graph, topic
timelines and multi-year trends, all as JSON artifacts in a data directory.

It can also pull real contribution data from a GitHub organization through
the gh CLI, rename placeholder agents to real model names, validate the
generated artifacts, and render an HTML summary report.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewFetchCommand())
	cmd.AddCommand(NewRenameCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewReportCommand())

	return cmd
}
