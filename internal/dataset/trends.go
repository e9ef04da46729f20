package dataset

import (
	"math/rand"
	"time"

	"github.com/harrison/agentpulse/internal/models"
)

const (
	trendBaseLevel       = 800
	trendGrowthPerMonth  = 0.01
	trendTotalFloor      = 200
	trendPRFloor         = 50
	trendReviewFloor     = 40
	trendDiscussionFloor = 20
)

// monthSeasonalFactor captures the yearly rhythm: spring and late summer
// peaks, a winter-holiday dip.
var monthSeasonalFactor = map[time.Month]float64{
	time.January:   0.85,
	time.February:  0.92,
	time.March:     1.05,
	time.April:     1.12,
	time.May:       1.08,
	time.June:      0.98,
	time.July:      1.15,
	time.August:    1.18,
	time.September: 1.06,
	time.October:   1.02,
	time.November:  0.95,
	time.December:  0.88,
}

// GenerateHistoricalTrends produces monthly totals for a trailing window of
// calendar months ending with the month containing the anchor date. Months
// step by exact calendar months, so consecutive records are always one
// month apart. Each total combines the month-of-year seasonal table with a
// linear growth factor compounding roughly one percent per month position.
func GenerateHistoricalTrends(rng *rand.Rand, months int, anchor time.Time) []models.MonthlyTrend {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())

	entries := make([]models.MonthlyTrend, 0, months)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, -(months - 1 - i), 0)

		growth := 1 + trendGrowthPerMonth*float64(i)
		total := floor(int(trendBaseLevel*monthSeasonalFactor[month.Month()]*growth+uniform(rng, -60, 90)), trendTotalFloor)

		prs := floor(int(float64(total)*uniform(rng, 0.38, 0.52)), trendPRFloor)
		reviews := floor(int(float64(total)*uniform(rng, 0.28, 0.4)), trendReviewFloor)
		discussions := floor(total-prs-reviews, trendDiscussionFloor)

		entries = append(entries, models.MonthlyTrend{
			Month:        month.Format(models.DateFormat),
			Total:        prs + reviews + discussions,
			PullRequests: prs,
			Reviews:      reviews,
			Discussions:  discussions,
		})
	}

	return entries
}
