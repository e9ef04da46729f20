package ghcli

import (
	"context"
	"sort"

	"github.com/harrison/agentpulse/internal/models"
)

// reviewFetchCap bounds review queries: only the first few pull requests
// per author per repository trigger a reviews fetch. Review counts are
// intentionally incomplete in exchange for staying under API rate limits.
const reviewFetchCap = 5

// Fetcher aggregates organization activity into one record per login.
type Fetcher struct {
	client *Client
	log    Logger
}

// NewFetcher creates a Fetcher over the given client.
func NewFetcher(client *Client, log Logger) *Fetcher {
	if log == nil {
		log = nopLogger{}
	}
	return &Fetcher{client: client, log: log}
}

// Aggregate lists the organization's repositories and tallies activity
// across them, returning the stats and the repository count.
func (f *Fetcher) Aggregate(ctx context.Context) ([]models.RealAgentActivity, int) {
	repos := f.client.Repos(ctx)
	f.log.Debugf("found %d repos in %s", len(repos), f.client.Org())
	return f.AggregateRepos(ctx, repos), len(repos)
}

// AggregateRepos tallies commits, pull requests and reviews per contributor
// across the given repositories. The result is sorted by descending total
// activity; equal totals order by login so output is deterministic.
func (f *Fetcher) AggregateRepos(ctx context.Context, repos []string) []models.RealAgentActivity {
	stats := make(map[string]*models.RealAgentActivity)
	get := func(login string) *models.RealAgentActivity {
		s, ok := stats[login]
		if !ok {
			s = &models.RealAgentActivity{Agent: login}
			stats[login] = s
		}
		return s
	}

	for _, repo := range repos {
		for _, contrib := range f.client.Contributors(ctx, repo) {
			s := get(contrib.Login)
			s.Commits += contrib.Contributions
			s.Total += contrib.Contributions
		}
	}

	for _, repo := range repos {
		prSeen := make(map[string]int)
		for _, pr := range f.client.PullRequests(ctx, repo) {
			author := pr.User.Login
			s := get(author)
			s.PullRequests++
			s.Total++

			prSeen[author]++
			if prSeen[author] > reviewFetchCap {
				continue
			}
			for _, review := range f.client.Reviews(ctx, repo, pr.Number) {
				r := get(review.User.Login)
				r.Reviews++
				r.Total++
			}
		}
	}

	out := make([]models.RealAgentActivity, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Agent < out[j].Agent
	})
	return out
}
