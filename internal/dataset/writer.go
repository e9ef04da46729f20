package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/agentpulse/internal/filelock"
)

// Artifact file names under the data directory.
const (
	DailyContributionsFile   = "daily_contributions.json"
	AgentActivityFile        = "agent_activity.json"
	CollaborationNetworkFile = "collaboration_network.json"
	TopicEvolutionFile       = "topic_evolution.json"
	HistoricalTrendsFile     = "historical_trends.json"
	RealAgentActivityFile    = "agent_activity_real.json"
)

// WriteArtifact marshals v as pretty-printed JSON (2-space indent, trailing
// newline) and writes it atomically under dir. Existing artifacts are
// overwritten wholesale.
func WriteArtifact(dir, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, name)
	if err := filelock.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ReadArtifact loads a JSON artifact from dir into v.
func ReadArtifact(dir, name string, v any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
