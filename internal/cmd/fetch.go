package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/agentpulse/internal/dataset"
	"github.com/harrison/agentpulse/internal/filelock"
	"github.com/harrison/agentpulse/internal/ghcli"
	"github.com/harrison/agentpulse/internal/history"
)

// historyDBFile is the fetch history database inside the data directory.
const historyDBFile = "fetch_history.db"

// NewFetchCommand creates the fetch command
func NewFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch real contribution data from GitHub",
		Long: `Fetch real contribution data for the configured organization through
the authenticated gh CLI: repositories, commit contributors, pull requests
and reviews, aggregated into one record per contributor and written to
agent_activity_real.json.

Each endpoint is queried once with pagination and no retries; a failing
endpoint is logged and contributes an empty result, so the aggregate may be
partial. Review lookups are capped at the first 5 pull requests per author
per repository to stay under rate limits.

Every run is also recorded in a local SQLite history database; use
--show-history to list past runs instead of fetching.

Examples:
  agentpulse fetch
  agentpulse fetch --org my-org
  agentpulse fetch --show-history`,
		Args: cobra.NoArgs,
		RunE: runFetch,
	}

	addCommonFlags(cmd)
	cmd.Flags().String("org", "", "GitHub organization (overrides config)")
	cmd.Flags().String("gh-path", "", "Path to the gh executable (overrides config)")
	cmd.Flags().Bool("show-history", false, "List recorded fetch runs and exit")
	cmd.Flags().Int("history-limit", 10, "Number of runs to list with --show-history")

	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if org, _ := cmd.Flags().GetString("org"); org != "" {
		cfg.Org = org
	}
	if ghPath, _ := cmd.Flags().GetString("gh-path"); ghPath != "" {
		cfg.GhPath = ghPath
	}

	log := newLogger(cfg)
	dbPath := filepath.Join(cfg.DataDir, historyDBFile)

	if show, _ := cmd.Flags().GetBool("show-history"); show {
		limit, _ := cmd.Flags().GetInt("history-limit")
		return showHistory(cmd, dbPath, limit)
	}

	lock, err := filelock.LockDir(cfg.DataDir)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	errLog := &ghclientLogger{log: log}
	client := ghcli.NewClient(&ghcli.CLIRunner{GhPath: cfg.GhPath}, cfg.Org, errLog)
	fetcher := ghcli.NewFetcher(client, errLog)

	log.Infof("fetching contribution data for %s", cfg.Org)
	repos := client.Repos(cmd.Context())
	log.Infof("found %d repos", len(repos))

	stats := fetcher.AggregateRepos(cmd.Context(), repos)
	if err := dataset.WriteArtifact(cfg.DataDir, dataset.RealAgentActivityFile, stats); err != nil {
		return err
	}
	log.Infof("wrote %s (%d contributors)", dataset.RealAgentActivityFile, len(stats))

	// History recording is best-effort; the artifact is already on disk.
	if store, err := history.NewStore(dbPath); err != nil {
		log.Warnf("fetch history unavailable: %v", err)
	} else {
		defer store.Close()
		if runID, err := store.RecordRun(cmd.Context(), cfg.Org, len(repos), stats); err != nil {
			log.Warnf("record fetch run: %v", err)
		} else {
			log.Debugf("recorded fetch run %s", runID)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Saved %d contributors to %s\n", len(stats), filepath.Join(cfg.DataDir, dataset.RealAgentActivityFile))
	if len(stats) > 0 {
		fmt.Fprintln(out, "\nTop contributors:")
		for i, stat := range stats {
			if i >= 10 {
				break
			}
			fmt.Fprintf(out, "  %s: %d total (%d commits, %d PRs, %d reviews)\n",
				stat.Agent, stat.Total, stat.Commits, stat.PullRequests, stat.Reviews)
		}
	}
	return nil
}

// showHistory lists recent fetch runs from the history database.
func showHistory(cmd *cobra.Command, dbPath string, limit int) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no fetch history at %s", dbPath)
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No fetch runs recorded.")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(out, "%s  %s  org=%s repos=%d contributors=%d\n",
			run.FetchedAt.Format("2006-01-02 15:04:05"), run.ID, run.Org, run.RepoCount, run.ContributorCount)
	}
	return nil
}

// ghclientLogger adapts the console logger to the ghcli.Logger interface,
// routing endpoint failures to stderr.
type ghclientLogger struct {
	log interface {
		Debugf(format string, args ...any)
	}
}

func (l *ghclientLogger) Debugf(format string, args ...any) {
	l.log.Debugf(format, args...)
}

func (l *ghclientLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
