package ghcli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Logger is the subset of the console logger the client needs.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// nopLogger discards everything; used when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Errorf(string, ...any) {}

// Repo is an organization repository.
type Repo struct {
	Name     string `json:"name"`
	Archived bool   `json:"archived"`
}

// Contributor is a commit contributor on a repository.
type Contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

// User identifies a GitHub account on a PR or review.
type User struct {
	Login string `json:"login"`
}

// PullRequest is one pull request on a repository.
type PullRequest struct {
	Number int   `json:"number"`
	User   *User `json:"user"`
}

// Review is one review on a pull request.
type Review struct {
	User *User `json:"user"`
}

// Client issues paginated queries against a GitHub organization. Every
// endpoint is best-effort: a failing or unparseable query is logged and
// treated as an empty result set, so aggregation degrades instead of
// aborting.
type Client struct {
	runner Runner
	org    string
	log    Logger
}

// NewClient creates a Client for the given organization.
func NewClient(runner Runner, org string, log Logger) *Client {
	if log == nil {
		log = nopLogger{}
	}
	return &Client{runner: runner, org: org, log: log}
}

// Org returns the organization the client queries.
func (c *Client) Org() string {
	return c.org
}

// fetch runs one query and decodes the items, returning nil on any failure.
func (c *Client) fetch(ctx context.Context, endpoint string) []json.RawMessage {
	data, err := c.runner.Run(ctx, endpoint)
	if err != nil {
		c.log.Errorf("fetching %s: %v", endpoint, err)
		return nil
	}
	return decodeItems(data)
}

// decodeItems parses a gh api response body into individual records.
// A --paginate response may be a single array, or several concatenated
// JSON documents one per line; the fallback reparses line by line and
// drops anything malformed.
func decodeItems(data []byte) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		return items
	}

	var out []json.RawMessage
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var page []json.RawMessage
		if err := json.Unmarshal([]byte(line), &page); err == nil {
			out = append(out, page...)
			continue
		}
		var obj json.RawMessage
		if err := json.Unmarshal([]byte(line), &obj); err == nil {
			out = append(out, obj)
		}
	}
	return out
}

// Repos lists the organization's non-archived repositories.
func (c *Client) Repos(ctx context.Context) []string {
	items := c.fetch(ctx, fmt.Sprintf("/orgs/%s/repos?per_page=100", c.org))

	var names []string
	for _, item := range items {
		var repo Repo
		if err := json.Unmarshal(item, &repo); err != nil || repo.Name == "" {
			continue
		}
		if repo.Archived {
			continue
		}
		names = append(names, repo.Name)
	}
	return names
}

// Contributors returns commit counts per login for a repository.
func (c *Client) Contributors(ctx context.Context, repo string) []Contributor {
	items := c.fetch(ctx, fmt.Sprintf("/repos/%s/%s/contributors?per_page=100", c.org, repo))

	var contributors []Contributor
	for _, item := range items {
		var contrib Contributor
		if err := json.Unmarshal(item, &contrib); err != nil || contrib.Login == "" {
			continue
		}
		contributors = append(contributors, contrib)
	}
	return contributors
}

// PullRequests returns all pull requests for a repository.
func (c *Client) PullRequests(ctx context.Context, repo string) []PullRequest {
	items := c.fetch(ctx, fmt.Sprintf("/repos/%s/%s/pulls?state=all&per_page=100", c.org, repo))

	var prs []PullRequest
	for _, item := range items {
		var pr PullRequest
		if err := json.Unmarshal(item, &pr); err != nil || pr.User == nil || pr.User.Login == "" {
			continue
		}
		prs = append(prs, pr)
	}
	return prs
}

// Reviews returns the reviews on one pull request.
func (c *Client) Reviews(ctx context.Context, repo string, number int) []Review {
	items := c.fetch(ctx, fmt.Sprintf("/repos/%s/%s/pulls/%d/reviews", c.org, repo, number))

	var reviews []Review
	for _, item := range items {
		var review Review
		if err := json.Unmarshal(item, &review); err != nil || review.User == nil || review.User.Login == "" {
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews
}
