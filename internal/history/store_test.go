package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/agentpulse/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "fetch_history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndRecentRuns(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	stats := []models.RealAgentActivity{
		{Agent: "octocat", Total: 18, PullRequests: 2, Commits: 16},
		{Agent: "hubot", Total: 7, PullRequests: 1, Reviews: 2, Commits: 4},
	}

	runID, err := store.RecordRun(ctx, "demo-org", 2, stats)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, "demo-org", runs[0].Org)
	assert.Equal(t, 2, runs[0].RepoCount)
	assert.Equal(t, 2, runs[0].ContributorCount)
}

func TestStore_RunStats(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	stats := []models.RealAgentActivity{
		{Agent: "hubot", Total: 7, Reviews: 2},
		{Agent: "octocat", Total: 18, Commits: 16},
	}
	runID, err := store.RecordRun(ctx, "demo-org", 1, stats)
	require.NoError(t, err)

	loaded, err := store.RunStats(ctx, runID)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "octocat", loaded[0].Agent, "ordered by descending total")
	assert.Equal(t, 18, loaded[0].Total)
}

func TestStore_RecentRunsLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.RecordRun(ctx, "demo-org", i, nil)
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_EmptyHistory(t *testing.T) {
	store := testStore(t)

	runs, err := store.RecentRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
