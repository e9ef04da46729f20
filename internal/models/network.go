package models

import (
	"fmt"
	"sort"
)

// Node is one agent vertex in the collaboration network.
type Node struct {
	ID string `json:"id"`
}

// Edge is an undirected weighted edge between two agents.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Network is the collaboration graph artifact.
type Network struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Validate checks the structural invariants of the network:
// no self-loops, every edge weight above 1, edges sorted non-increasing
// by weight, and edge count bounded by the number of unordered pairs.
func (n *Network) Validate() error {
	ids := make(map[string]bool, len(n.Nodes))
	for _, node := range n.Nodes {
		if node.ID == "" {
			return fmt.Errorf("node with empty id")
		}
		if ids[node.ID] {
			return fmt.Errorf("duplicate node %q", node.ID)
		}
		ids[node.ID] = true
	}

	maxEdges := len(n.Nodes) * (len(n.Nodes) - 1) / 2
	if len(n.Edges) > maxEdges {
		return fmt.Errorf("edge count %d exceeds pair count %d", len(n.Edges), maxEdges)
	}

	prev := -1
	for i, e := range n.Edges {
		if e.Source == e.Target {
			return fmt.Errorf("self-loop on %q", e.Source)
		}
		if !ids[e.Source] || !ids[e.Target] {
			return fmt.Errorf("edge %q-%q references unknown node", e.Source, e.Target)
		}
		if e.Weight <= 1 {
			return fmt.Errorf("edge %q-%q weight %d not above 1", e.Source, e.Target, e.Weight)
		}
		if i > 0 && e.Weight > prev {
			return fmt.Errorf("edges not sorted: weight %d follows %d", e.Weight, prev)
		}
		prev = e.Weight
	}
	return nil
}

// AgentIDs returns the sorted set of node ids.
func (n *Network) AgentIDs() []string {
	ids := make([]string, 0, len(n.Nodes))
	for _, node := range n.Nodes {
		ids = append(ids, node.ID)
	}
	sort.Strings(ids)
	return ids
}

// AgentNames returns the sorted set of agent names from activity records.
func AgentNames(activity []AgentActivity) []string {
	names := make([]string, 0, len(activity))
	for _, a := range activity {
		names = append(names, a.Agent)
	}
	sort.Strings(names)
	return names
}
