// Package history persists a record of live fetch runs in a local SQLite
// database, so successive snapshots of real organization activity can be
// compared after the artifact file has been overwritten.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/agentpulse/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Run is one recorded invocation of the fetcher.
type Run struct {
	ID               string
	Org              string
	FetchedAt        time.Time
	RepoCount        int
	ContributorCount int
}

// Store manages the fetch history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the history database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so the remaining pragmas wait on locks.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores one fetch run and its per-contributor stats in a single
// transaction, returning the generated run id.
func (s *Store) RecordRun(ctx context.Context, org string, repoCount int, stats []models.RealAgentActivity) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO fetch_runs (id, org, fetched_at, repo_count, contributor_count)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, org, time.Now().UTC(), repoCount, len(stats))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO contributor_stats (run_id, agent, total, pull_requests, reviews, commits, discussions)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, stat := range stats {
		_, err := stmt.ExecContext(ctx, runID, stat.Agent,
			stat.Total, stat.PullRequests, stat.Reviews, stat.Commits, stat.Discussions)
		if err != nil {
			return "", fmt.Errorf("insert stats for %s: %w", stat.Agent, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, org, fetched_at, repo_count, contributor_count
		 FROM fetch_runs ORDER BY fetched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Org, &run.FetchedAt, &run.RepoCount, &run.ContributorCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunStats returns the per-contributor stats recorded for a run, ordered
// by descending total.
func (s *Store) RunStats(ctx context.Context, runID string) ([]models.RealAgentActivity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT agent, total, pull_requests, reviews, commits, discussions
		 FROM contributor_stats WHERE run_id = ? ORDER BY total DESC, agent ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats []models.RealAgentActivity
	for rows.Next() {
		var stat models.RealAgentActivity
		if err := rows.Scan(&stat.Agent, &stat.Total, &stat.PullRequests, &stat.Reviews, &stat.Commits, &stat.Discussions); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}
