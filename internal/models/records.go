// Package models defines the record shapes written to the dataset artifacts.
//
// Every record carries a Validate method enforcing the invariants the
// generators guarantee by construction: totals equal the sum of their
// sub-categories and every count respects its documented floor.
package models

import (
	"fmt"
	"time"
)

// DateFormat is the layout used for all date fields in the artifacts.
const DateFormat = "2006-01-02"

// DailyContribution is one day of organization-wide activity.
type DailyContribution struct {
	Date         string `json:"date"`
	Total        int    `json:"total"`
	PullRequests int    `json:"pull_requests"`
	Reviews      int    `json:"reviews"`
	Discussions  int    `json:"discussions"`
}

// Validate checks the daily record invariants.
func (d *DailyContribution) Validate() error {
	if _, err := time.Parse(DateFormat, d.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", d.Date, err)
	}
	if d.Total < 5 {
		return fmt.Errorf("day %s: total %d below floor 5", d.Date, d.Total)
	}
	if d.PullRequests < 2 {
		return fmt.Errorf("day %s: pull_requests %d below floor 2", d.Date, d.PullRequests)
	}
	if d.Reviews < 2 {
		return fmt.Errorf("day %s: reviews %d below floor 2", d.Date, d.Reviews)
	}
	if d.Discussions < 1 {
		return fmt.Errorf("day %s: discussions %d below floor 1", d.Date, d.Discussions)
	}
	if sum := d.PullRequests + d.Reviews + d.Discussions; sum != d.Total {
		return fmt.Errorf("day %s: sub-categories sum to %d, total is %d", d.Date, sum, d.Total)
	}
	return nil
}

// AgentActivity is the synthetic per-agent activity breakdown.
type AgentActivity struct {
	Agent        string `json:"agent"`
	Total        int    `json:"total"`
	PullRequests int    `json:"pull_requests"`
	Reviews      int    `json:"reviews"`
	Mentoring    int    `json:"mentoring"`
	Discussions  int    `json:"discussions"`
}

// Validate checks the agent activity invariants.
func (a *AgentActivity) Validate() error {
	if a.Agent == "" {
		return fmt.Errorf("agent name is required")
	}
	if a.Total < 0 {
		return fmt.Errorf("agent %s: negative total %d", a.Agent, a.Total)
	}
	if a.PullRequests < 5 || a.Reviews < 5 || a.Mentoring < 2 || a.Discussions < 3 {
		return fmt.Errorf("agent %s: sub-category below floor (prs=%d reviews=%d mentoring=%d discussions=%d)",
			a.Agent, a.PullRequests, a.Reviews, a.Mentoring, a.Discussions)
	}
	if sum := a.PullRequests + a.Reviews + a.Mentoring + a.Discussions; sum != a.Total {
		return fmt.Errorf("agent %s: sub-categories sum to %d, total is %d", a.Agent, sum, a.Total)
	}
	return nil
}

// RealAgentActivity is one contributor aggregated from live GitHub data.
// Discussions is carried for shape parity with AgentActivity but is never
// populated by the fetcher.
type RealAgentActivity struct {
	Agent        string `json:"agent"`
	Total        int    `json:"total"`
	PullRequests int    `json:"pull_requests"`
	Reviews      int    `json:"reviews"`
	Commits      int    `json:"commits"`
	Discussions  int    `json:"discussions"`
}

// TopicVolume is one (period, topic) cell of the topic evolution timeline.
type TopicVolume struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Topic       string `json:"topic"`
	Volume      int    `json:"volume"`
}

// Validate checks the period arithmetic and volume floor.
// periodLengthDays is the configured bucket width.
func (t *TopicVolume) Validate(periodLengthDays int) error {
	start, err := time.Parse(DateFormat, t.PeriodStart)
	if err != nil {
		return fmt.Errorf("invalid period_start %q: %w", t.PeriodStart, err)
	}
	end, err := time.Parse(DateFormat, t.PeriodEnd)
	if err != nil {
		return fmt.Errorf("invalid period_end %q: %w", t.PeriodEnd, err)
	}
	if want := start.AddDate(0, 0, periodLengthDays-1); !end.Equal(want) {
		return fmt.Errorf("topic %s: period_end %s, want %s", t.Topic, t.PeriodEnd, want.Format(DateFormat))
	}
	if t.Volume < 5 {
		return fmt.Errorf("topic %s period %s: volume %d below floor 5", t.Topic, t.PeriodStart, t.Volume)
	}
	return nil
}

// MonthlyTrend is one month of the historical trend series.
type MonthlyTrend struct {
	Month        string `json:"month"`
	Total        int    `json:"total"`
	PullRequests int    `json:"pull_requests"`
	Reviews      int    `json:"reviews"`
	Discussions  int    `json:"discussions"`
}

// Validate checks the monthly record invariants.
func (m *MonthlyTrend) Validate() error {
	d, err := time.Parse(DateFormat, m.Month)
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", m.Month, err)
	}
	if d.Day() != 1 {
		return fmt.Errorf("month %s is not the first of the month", m.Month)
	}
	if m.Total < 200 {
		return fmt.Errorf("month %s: total %d below floor 200", m.Month, m.Total)
	}
	if m.PullRequests < 50 || m.Reviews < 40 || m.Discussions < 20 {
		return fmt.Errorf("month %s: sub-category below floor (prs=%d reviews=%d discussions=%d)",
			m.Month, m.PullRequests, m.Reviews, m.Discussions)
	}
	if sum := m.PullRequests + m.Reviews + m.Discussions; sum != m.Total {
		return fmt.Errorf("month %s: sub-categories sum to %d, total is %d", m.Month, sum, m.Total)
	}
	return nil
}
