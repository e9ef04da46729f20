package dataset

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/harrison/agentpulse/internal/models"
)

// Collaboration weight adjustments keyed off the roster naming scheme:
// the lead cohort (names under the "Agent A" prefix) collaborates more,
// the ops role sits slightly apart from day-to-day co-work.
const (
	leadPrefix = "Agent A"
	opsMarker  = "Ops"

	leadBoost = 1.35
	opsDamp   = 0.85
)

// GenerateCollaborationNetwork builds the undirected weighted co-work graph
// over the agent roster. Every unordered pair gets a triangular base weight
// adjusted by the naming heuristics above plus uniform noise; edges with a
// final weight of 1 or less are dropped. Edges are sorted by descending
// weight; ties keep pair enumeration order (outer index, then inner), which
// is the documented deterministic tie-break.
func GenerateCollaborationNetwork(rng *rand.Rand, names []string) models.Network {
	edges := make([]models.Edge, 0, len(names)*(len(names)-1)/2)

	for i, source := range names {
		for _, target := range names[i+1:] {
			base := triangular(rng, 2, 18, 10)
			if strings.HasPrefix(source, leadPrefix) || strings.HasPrefix(target, leadPrefix) {
				base *= leadBoost
			}
			if strings.Contains(source, opsMarker) || strings.Contains(target, opsMarker) {
				base *= opsDamp
			}
			weight := floor(int(base+uniform(rng, -2, 3)), 1)
			edges = append(edges, models.Edge{Source: source, Target: target, Weight: weight})
		}
	}

	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight > edges[b].Weight
	})

	kept := make([]models.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Weight > 1 {
			kept = append(kept, e)
		}
	}

	nodes := make([]models.Node, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, models.Node{ID: name})
	}

	return models.Network{Nodes: nodes, Edges: kept}
}
