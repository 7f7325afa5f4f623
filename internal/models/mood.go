package models

import "strings"

type MoodType string

const (
	MoodHappy     MoodType = "happy"
	MoodEnergetic MoodType = "energetic"
	MoodCalm      MoodType = "calm"
	MoodTired     MoodType = "tired"
	MoodAnxious   MoodType = "anxious"
	MoodIrritable MoodType = "irritable"
	MoodSad       MoodType = "sad"
	MoodStressed  MoodType = "stressed"
)

// AllMoods lists every mood in declaration order. The insights
// aggregator relies on this order to break frequency ties.
func AllMoods() []MoodType {
	return []MoodType{
		MoodHappy,
		MoodEnergetic,
		MoodCalm,
		MoodTired,
		MoodAnxious,
		MoodIrritable,
		MoodSad,
		MoodStressed,
	}
}

func ParseMoodType(value string) (MoodType, bool) {
	mood := MoodType(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range AllMoods() {
		if mood == known {
			return mood, true
		}
	}
	return "", false
}
