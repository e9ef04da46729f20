package dataset

import (
	"math/rand"

	"github.com/harrison/agentpulse/internal/models"
)

// activityPoolPerAgent fixes the total activity budget shared across the
// roster: the pool is this value times the agent count.
const activityPoolPerAgent = 500

// GenerateAgentActivity allocates activity counts per agent. Each agent
// draws a triangular weight skewed toward heavier contributors; weights are
// normalized against the fixed activity pool and each agent's share is
// split into pull requests, reviews, mentoring and discussions. Output
// preserves input order.
func GenerateAgentActivity(rng *rand.Rand, names []string) []models.AgentActivity {
	weights := make([]float64, len(names))
	var totalWeight float64
	for i := range names {
		weights[i] = triangular(rng, 0.8, 2.2, 1.5)
		totalWeight += weights[i]
	}

	agents := make([]models.AgentActivity, 0, len(names))
	for i, name := range names {
		total := int(activityPoolPerAgent * weights[i] / totalWeight * float64(len(names)))

		prs := floor(int(float64(total)*uniform(rng, 0.35, 0.55)), 5)
		reviews := floor(int(float64(total)*uniform(rng, 0.25, 0.45)), 5)
		mentoring := floor(int(float64(total)*uniform(rng, 0.08, 0.18)), 2)
		discussions := floor(total-prs-reviews-mentoring, 3)

		agents = append(agents, models.AgentActivity{
			Agent:        name,
			Total:        prs + reviews + mentoring + discussions,
			PullRequests: prs,
			Reviews:      reviews,
			Mentoring:    mentoring,
			Discussions:  discussions,
		})
	}

	return agents
}
