package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/agentpulse/internal/report"
)

// NewReportCommand creates the report command
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a summary report of the artifacts",
		Long: `Build a summary of the artifacts in the data directory and render it
as HTML for the demo dashboard, or as Markdown to stdout.

Examples:
  agentpulse report                     # writes data/report.html
  agentpulse report --format md         # Markdown to stdout
  agentpulse report --output out.html   # custom output path`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}

	addCommonFlags(cmd)
	cmd.Flags().StringP("format", "f", "html", "Report format: html, md")
	cmd.Flags().StringP("output", "o", "", "Output file path (default: <data-dir>/report.html)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "md", "markdown":
		markdown, err := report.BuildMarkdown(cfg.DataDir)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), markdown)
		return nil
	case "html":
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = filepath.Join(cfg.DataDir, "report.html")
		}
		if err := report.WriteHTML(cfg.DataDir, output); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected html or md)", format)
	}
}
