// Package ghcli fetches real contribution data from a GitHub organization
// through the authenticated gh CLI and aggregates it into per-contributor
// activity records.
//
// The subprocess boundary is kept behind the narrow Runner interface so the
// aggregation logic is testable without a live gh binary or network access.
package ghcli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes one paginated GitHub API query and returns the raw
// response body.
type Runner interface {
	Run(ctx context.Context, endpoint string) ([]byte, error)
}

// CLIRunner invokes the gh CLI for API access.
type CLIRunner struct {
	// GhPath is the gh executable; defaults to "gh" when empty.
	GhPath string
}

// Run executes `gh api <endpoint> --paginate` and returns stdout.
func (r *CLIRunner) Run(ctx context.Context, endpoint string) ([]byte, error) {
	ghPath := r.GhPath
	if ghPath == "" {
		ghPath = "gh"
	}

	cmd := exec.CommandContext(ctx, ghPath, "api", endpoint, "--paginate")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("gh api %s: %w: %s", endpoint, err, detail)
		}
		return nil, fmt.Errorf("gh api %s: %w", endpoint, err)
	}
	return stdout.Bytes(), nil
}
