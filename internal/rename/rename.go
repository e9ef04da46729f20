// Package rename rewrites placeholder agent identifiers in the generated
// artifacts to the fixed roster of real model names.
//
// Renaming is positional, not semantic: the i-th agent activity record gets
// the i-th real name, and network ids of the form "Agent <index>" map by
// numeric suffix. Anything that does not match the placeholder pattern, or
// whose index falls outside the roster, is left untouched — partial
// remapping is the designed fallback, so a second pass is a no-op.
package rename

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harrison/agentpulse/internal/dataset"
	"github.com/harrison/agentpulse/internal/filelock"
)

// placeholderPrefix marks a synthetic agent identifier.
const placeholderPrefix = "Agent "

// RealAgentNames is the ordered roster substituted for the placeholders.
var RealAgentNames = []string{
	"DeepSeek-V3.2",
	"Gemini 3 Pro",
	"Gemini 2.5 Pro",
	"GPT-5.2",
	"Claude 3.7 Sonnet",
	"Claude Haiku 4.5",
	"GPT-5.1",
	"Opus 4.5 (Claude Code)",
	"GPT-5",
	"Claude Opus 4.6",
	"Claude Opus 4.5",
	"Claude Sonnet 4.5",
}

// Result reports how many identifiers each pass rewrote.
type Result struct {
	AgentsRenamed int
	NodesRenamed  int
	EdgesRenamed  int
}

// Apply rewrites the agent activity and collaboration network artifacts in
// dir, in place. Missing or malformed name fields are skipped silently.
func Apply(dir string) (*Result, error) {
	result := &Result{}

	if err := renameAgentActivity(dir, result); err != nil {
		return nil, err
	}
	if err := renameNetwork(dir, result); err != nil {
		return nil, err
	}
	return result, nil
}

// renameAgentActivity replaces placeholder names by record position.
func renameAgentActivity(dir string, result *Result) error {
	path := filepath.Join(dir, dataset.AgentActivityFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", dataset.AgentActivityFile, err)
	}

	var agents []map[string]any
	if err := json.Unmarshal(data, &agents); err != nil {
		return fmt.Errorf("parse %s: %w", dataset.AgentActivityFile, err)
	}

	for i, agent := range agents {
		if i >= len(RealAgentNames) {
			break
		}
		name, ok := agent["agent"].(string)
		if !ok || !strings.HasPrefix(name, placeholderPrefix) {
			continue
		}
		agent["agent"] = RealAgentNames[i]
		result.AgentsRenamed++
	}

	return writeBack(path, agents)
}

// renameNetwork replaces node ids and edge endpoints whose placeholder
// carries a numeric suffix within roster bounds.
func renameNetwork(dir string, result *Result) error {
	path := filepath.Join(dir, dataset.CollaborationNetworkFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", dataset.CollaborationNetworkFile, err)
	}

	var network map[string]any
	if err := json.Unmarshal(data, &network); err != nil {
		return fmt.Errorf("parse %s: %w", dataset.CollaborationNetworkFile, err)
	}

	if nodes, ok := network["nodes"].([]any); ok {
		for _, raw := range nodes {
			node, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if id, ok := node["id"].(string); ok {
				if mapped, ok := mapPlaceholder(id); ok {
					node["id"] = mapped
					result.NodesRenamed++
				}
			}
		}
	}

	if edges, ok := network["edges"].([]any); ok {
		for _, raw := range edges {
			edge, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			for _, key := range []string{"source", "target"} {
				if name, ok := edge[key].(string); ok {
					if mapped, ok := mapPlaceholder(name); ok {
						edge[key] = mapped
						result.EdgesRenamed++
					}
				}
			}
		}
	}

	return writeBack(path, network)
}

// mapPlaceholder maps "Agent <index>" to the real name at that index.
// Names without a numeric suffix, or with one outside the roster, do not
// map.
func mapPlaceholder(name string) (string, bool) {
	if !strings.HasPrefix(name, placeholderPrefix) {
		return "", false
	}
	suffix := strings.TrimPrefix(name, placeholderPrefix)
	index, err := strconv.Atoi(suffix)
	if err != nil || index < 0 || index >= len(RealAgentNames) {
		return "", false
	}
	return RealAgentNames[index], true
}

func writeBack(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := filelock.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
