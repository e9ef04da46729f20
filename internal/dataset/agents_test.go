package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRoster = []string{
	"Agent Aurora", "Agent Bolt", "Agent Circuit", "Agent Delta",
	"Agent Echo", "Agent Flux", "Agent Glimmer", "Agent Halo",
	"Agent Ops", "Agent Pulse", "Agent Quanta", "Agent Relay",
}

func TestGenerateAgentActivity_Invariants(t *testing.T) {
	agents := GenerateAgentActivity(NewSource(42, SeedOffsetAgents), testRoster)

	require.Len(t, agents, len(testRoster))
	for i, agent := range agents {
		assert.Equal(t, testRoster[i], agent.Agent, "input order preserved")
		require.NoError(t, agent.Validate())
		assert.Equal(t, agent.Total,
			agent.PullRequests+agent.Reviews+agent.Mentoring+agent.Discussions)
	}
}

func TestGenerateAgentActivity_PoolSize(t *testing.T) {
	agents := GenerateAgentActivity(NewSource(42, SeedOffsetAgents), testRoster)

	var sum int
	for _, agent := range agents {
		sum += agent.Total
	}

	// Weight normalization targets 500 per agent; integer truncation and
	// sub-category floors leave the sum within a few percent of the pool.
	pool := activityPoolPerAgent * len(testRoster)
	assert.InDelta(t, pool, sum, 0.05*float64(pool))
}

func TestGenerateAgentActivity_Deterministic(t *testing.T) {
	first := GenerateAgentActivity(NewSource(42, SeedOffsetAgents), testRoster)
	second := GenerateAgentActivity(NewSource(42, SeedOffsetAgents), testRoster)
	assert.Equal(t, first, second)
}

func TestGenerateAgentActivity_EmptyRoster(t *testing.T) {
	agents := GenerateAgentActivity(NewSource(42, SeedOffsetAgents), nil)
	assert.Empty(t, agents)
}
