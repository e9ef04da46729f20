package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/agentpulse/internal/config"
	"github.com/harrison/agentpulse/internal/dataset"
	"github.com/harrison/agentpulse/internal/models"
)

func TestValidateCommand_GeneratedArtifactsPass(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand("generate", "--data-dir", dir, "--days", "30")
	require.NoError(t, err)

	output, err := executeCommand("validate", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, output, "valid")
}

func TestValidateCommand_MissingArtifacts(t *testing.T) {
	_, err := executeCommand("validate", "--data-dir", t.TempDir())
	assert.Error(t, err)
}

// The two agent artifacts join on the agent name; a diverging set must be
// reported.
func TestValidateArtifacts_AgentSetDivergence(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand("generate", "--data-dir", dir, "--days", "30")
	require.NoError(t, err)

	var network models.Network
	require.NoError(t, dataset.ReadArtifact(dir, dataset.CollaborationNetworkFile, &network))
	// Rename one node without touching the activity file.
	for i := range network.Edges {
		if network.Edges[i].Source == network.Nodes[0].ID {
			network.Edges[i].Source = "Agent Imposter"
		}
		if network.Edges[i].Target == network.Nodes[0].ID {
			network.Edges[i].Target = "Agent Imposter"
		}
	}
	network.Nodes[0].ID = "Agent Imposter"
	require.NoError(t, dataset.WriteArtifact(dir, dataset.CollaborationNetworkFile, network))

	cfg := config.DefaultConfig()
	cfg.DataDir = dir

	var buf bytes.Buffer
	err = validateArtifacts(cfg, &buf)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "agent sets diverge")
}

func TestValidateArtifacts_BrokenInvariant(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand("generate", "--data-dir", dir, "--days", "30")
	require.NoError(t, err)

	var daily []models.DailyContribution
	require.NoError(t, dataset.ReadArtifact(dir, dataset.DailyContributionsFile, &daily))
	daily[0].Total += 3
	require.NoError(t, dataset.WriteArtifact(dir, dataset.DailyContributionsFile, daily))

	cfg := config.DefaultConfig()
	cfg.DataDir = dir

	var buf bytes.Buffer
	err = validateArtifacts(cfg, &buf)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "sub-categories sum")
}
