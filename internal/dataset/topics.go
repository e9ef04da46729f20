package dataset

import (
	"math"
	"math/rand"
	"time"

	"github.com/harrison/agentpulse/internal/models"
)

// GenerateTopicEvolution models topic strength over consecutive periods.
// One generator instance assigns every topic a phase, then a base strength,
// so each topic's sine wave peaks at a different moment. Output is ordered
// by period then topic. The window of periods*periodLengthDays days ends
// just before the anchor date.
func GenerateTopicEvolution(rng *rand.Rand, topics []string, periods, periodLengthDays int, anchor time.Time) []models.TopicVolume {
	start := anchor.AddDate(0, 0, -periods*periodLengthDays)

	// Phases for all topics are drawn before any base strength, in roster
	// order; reordering the draws changes every volume downstream.
	phase := make(map[string]float64, len(topics))
	for _, topic := range topics {
		phase[topic] = uniform(rng, 0, 2*math.Pi)
	}
	base := make(map[string]float64, len(topics))
	for _, topic := range topics {
		base[topic] = uniform(rng, 0.6, 1.2)
	}

	timeline := make([]models.TopicVolume, 0, periods*len(topics))
	for i := 0; i < periods; i++ {
		periodStart := start.AddDate(0, 0, i*periodLengthDays)
		periodEnd := periodStart.AddDate(0, 0, periodLengthDays-1)
		for _, topic := range topics {
			wave := math.Sin(2*math.Pi*float64(i)/float64(periods) + phase[topic])
			momentum := base[topic] * (1 + 0.6*wave)
			volume := floor(int(50*momentum+uniform(rng, -6, 8)), 5)

			timeline = append(timeline, models.TopicVolume{
				PeriodStart: periodStart.Format(models.DateFormat),
				PeriodEnd:   periodEnd.Format(models.DateFormat),
				Topic:       topic,
				Volume:      volume,
			})
		}
	}

	return timeline
}
