package dataset

import (
	"math"
	"math/rand"
	"time"

	"github.com/harrison/agentpulse/internal/models"
)

const (
	dailyBaseLevel   = 40
	dailyAmplitude   = 12
	seasonPeriodDays = 90
)

// weekdayFactor scales daily activity: Tuesday-Thursday run hottest,
// weekends drop off.
var weekdayFactor = map[time.Weekday]float64{
	time.Monday:    1.05,
	time.Tuesday:   1.15,
	time.Wednesday: 1.18,
	time.Thursday:  1.12,
	time.Friday:    1.02,
	time.Saturday:  0.72,
	time.Sunday:    0.78,
}

// GenerateDailyContributions builds day-level contribution counts for a
// trailing window ending on (and including) end. Output is ordered oldest
// to newest. Totals combine the weekday table, a 90-day seasonal sine wave
// and bounded uniform noise, floored at 5; pull requests and reviews are
// carved from the total as random fractions and discussions take the
// remainder.
func GenerateDailyContributions(rng *rand.Rand, days int, end time.Time) []models.DailyContribution {
	contributions := make([]models.DailyContribution, 0, days)

	for i := 0; i < days; i++ {
		day := end.AddDate(0, 0, -(days - 1 - i))

		wave := math.Sin(2 * math.Pi * float64(i) / seasonPeriodDays)
		noise := uniform(rng, -6, 6)
		total := floor(int((dailyBaseLevel+dailyAmplitude*wave)*weekdayFactor[day.Weekday()]+noise), 5)

		prs := floor(int(float64(total)*uniform(rng, 0.35, 0.55)), 2)
		reviews := floor(int(float64(total)*uniform(rng, 0.25, 0.45)), 2)
		discussions := floor(total-prs-reviews, 1)

		contributions = append(contributions, models.DailyContribution{
			Date:         day.Format(models.DateFormat),
			Total:        prs + reviews + discussions,
			PullRequests: prs,
			Reviews:      reviews,
			Discussions:  discussions,
		})
	}

	return contributions
}
