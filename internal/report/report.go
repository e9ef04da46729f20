// Package report renders a summary of the generated artifacts for the demo
// dashboard, as Markdown or as HTML converted with goldmark.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/agentpulse/internal/dataset"
	"github.com/harrison/agentpulse/internal/models"
)

// topEntries bounds the per-section tables.
const topEntries = 10

// BuildMarkdown assembles a Markdown summary of whichever artifacts exist
// under dir. Missing artifacts are skipped, so a report can be produced
// after any subset of generate/fetch has run.
func BuildMarkdown(dir string) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Contribution Activity Report\n\n")

	found := 0

	var daily []models.DailyContribution
	if err := dataset.ReadArtifact(dir, dataset.DailyContributionsFile, &daily); err == nil && len(daily) > 0 {
		found++
		busiest := daily[0]
		var total int
		for _, day := range daily {
			total += day.Total
			if day.Total > busiest.Total {
				busiest = day
			}
		}
		sb.WriteString("## Daily Contributions\n\n")
		fmt.Fprintf(&sb, "- **Window**: %s to %s (%d days)\n", daily[0].Date, daily[len(daily)-1].Date, len(daily))
		fmt.Fprintf(&sb, "- **Total contributions**: %d\n", total)
		fmt.Fprintf(&sb, "- **Busiest day**: %s (%d contributions)\n\n", busiest.Date, busiest.Total)
	}

	var agents []models.AgentActivity
	if err := dataset.ReadArtifact(dir, dataset.AgentActivityFile, &agents); err == nil && len(agents) > 0 {
		found++
		sb.WriteString("## Agent Activity\n\n")
		sb.WriteString("| Agent | Total | PRs | Reviews | Mentoring | Discussions |\n")
		sb.WriteString("|-------|-------|-----|---------|-----------|-------------|\n")
		for _, a := range agents {
			fmt.Fprintf(&sb, "| %s | %d | %d | %d | %d | %d |\n",
				a.Agent, a.Total, a.PullRequests, a.Reviews, a.Mentoring, a.Discussions)
		}
		sb.WriteString("\n")
	}

	var network models.Network
	if err := dataset.ReadArtifact(dir, dataset.CollaborationNetworkFile, &network); err == nil && len(network.Nodes) > 0 {
		found++
		sb.WriteString("## Collaboration Network\n\n")
		fmt.Fprintf(&sb, "- **Agents**: %d\n", len(network.Nodes))
		fmt.Fprintf(&sb, "- **Edges**: %d\n\n", len(network.Edges))
		if len(network.Edges) > 0 {
			sb.WriteString("| Pair | Weight |\n")
			sb.WriteString("|------|--------|\n")
			for i, e := range network.Edges {
				if i >= topEntries {
					break
				}
				fmt.Fprintf(&sb, "| %s — %s | %d |\n", e.Source, e.Target, e.Weight)
			}
			sb.WriteString("\n")
		}
	}

	var real []models.RealAgentActivity
	if err := dataset.ReadArtifact(dir, dataset.RealAgentActivityFile, &real); err == nil && len(real) > 0 {
		found++
		sb.WriteString("## Top Contributors (live data)\n\n")
		sb.WriteString("| Contributor | Total | Commits | PRs | Reviews |\n")
		sb.WriteString("|-------------|-------|---------|-----|--------|\n")
		for i, r := range real {
			if i >= topEntries {
				break
			}
			fmt.Fprintf(&sb, "| %s | %d | %d | %d | %d |\n",
				r.Agent, r.Total, r.Commits, r.PullRequests, r.Reviews)
		}
		sb.WriteString("\n")
	}

	if found == 0 {
		return "", fmt.Errorf("no artifacts found in %s", dir)
	}
	return sb.String(), nil
}

// RenderHTML converts the Markdown summary to a standalone HTML document.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n<title>Contribution Activity Report</title>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// WriteHTML renders the summary for dir and writes it to path.
func WriteHTML(dir, path string) error {
	markdown, err := BuildMarkdown(dir)
	if err != nil {
		return err
	}
	html, err := RenderHTML(markdown)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
