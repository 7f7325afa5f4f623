package services

import (
	"time"

	"github.com/bloomcycle/bloom/internal/models"
)

// CycleInsights summarizes the current cycle for the insights screen.
type CycleInsights struct {
	CycleDay            int                     `json:"cycle_day"`
	DaysUntilNextPeriod int                     `json:"days_until_next_period"`
	DaysLogged          int                     `json:"days_logged"`
	MoodFrequency       map[models.MoodType]int `json:"mood_frequency"`
	TopMood             *models.MoodType        `json:"top_mood,omitempty"`
}

// BuildCycleInsights derives summary statistics from one cycle.
// CycleDay is not clamped to the expected length; DaysUntilNextPeriod
// goes to zero and below once the predicted start is reached, which
// callers read as "due now".
func BuildCycleInsights(cycle models.Cycle, now time.Time, location *time.Location) CycleInsights {
	nextStart := DateAtLocation(cycle.StartDate, location).AddDate(0, 0, cycle.CycleLength)

	insights := CycleInsights{
		CycleDay:            WholeDaysBetween(now, cycle.StartDate, location),
		DaysUntilNextPeriod: WholeDaysBetween(nextStart, now, location),
		DaysLogged:          len(cycle.Days),
		MoodFrequency:       MoodFrequency(cycle),
	}
	insights.TopMood = TopMood(insights.MoodFrequency)
	return insights
}

// MoodFrequency counts logged days per mood. Days without a mood fall
// into no bucket.
func MoodFrequency(cycle models.Cycle) map[models.MoodType]int {
	frequency := make(map[models.MoodType]int)
	for _, day := range cycle.Days {
		if day.Mood != nil {
			frequency[*day.Mood]++
		}
	}
	return frequency
}

// TopMood picks the most frequent mood. Ties go to whichever mood comes
// first in declaration order, keeping the result deterministic.
func TopMood(frequency map[models.MoodType]int) *models.MoodType {
	var top *models.MoodType
	best := 0
	for _, mood := range models.AllMoods() {
		count := frequency[mood]
		if count > best {
			mood := mood
			top = &mood
			best = count
		}
	}
	return top
}

// MoodDistributionPercent reports the share of days with the given mood
// over ALL logged days, moodless ones included, so no-mood days lower
// every percentage. Zero when nothing is logged.
func MoodDistributionPercent(frequency map[models.MoodType]int, mood models.MoodType, daysLogged int) float64 {
	if daysLogged == 0 {
		return 0
	}
	return float64(frequency[mood]) / float64(daysLogged) * 100
}
