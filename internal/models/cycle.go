package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// DayKeyLayout is the map-key format for logged days. Keys must survive
// serialization as-is so that exported data stays portable.
const DayKeyLayout = "2006-01-02"

// CycleDay holds everything logged for one calendar date. Optional
// fields are pointers so a partial update can distinguish "leave
// untouched" from "set to zero value".
type CycleDay struct {
	Date     time.Time `json:"date"`
	Period   *bool     `json:"period,omitempty"`
	Mood     *MoodType `json:"mood,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
	Symptoms []string  `json:"symptoms,omitempty"`
}

// IsPeriod reports the period flag with absent treated as false.
func (day CycleDay) IsPeriod() bool {
	return day.Period != nil && *day.Period
}

// Cycle is one tracked menstrual cycle. StartDate is immutable for the
// lifetime of the instance; starting over means creating a new Cycle.
type Cycle struct {
	ID           string              `json:"id"`
	StartDate    time.Time           `json:"start_date"`
	EndDate      *time.Time          `json:"end_date,omitempty"`
	PeriodLength int                 `json:"period_length"`
	CycleLength  int                 `json:"cycle_length"`
	Days         map[string]CycleDay `json:"days"`
}

// DayKey formats a date as the canonical key into Cycle.Days.
func DayKey(date time.Time) string {
	return date.Format(DayKeyLayout)
}

// DayAt returns the record logged for the given date, if any.
func (cycle Cycle) DayAt(date time.Time) (CycleDay, bool) {
	if cycle.Days == nil {
		return CycleDay{}, false
	}
	day, found := cycle.Days[DayKey(date)]
	return day, found
}

// Preferences are the notification-style toggles from the settings
// screen. They are plumbing only; nothing in the core schedules work.
type Preferences struct {
	PeriodReminders     bool `json:"period_reminders"`
	DailyCheckIn        bool `json:"daily_check_in"`
	FoodRecommendations bool `json:"food_recommendations"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		PeriodReminders:     false,
		DailyCheckIn:        true,
		FoodRecommendations: true,
	}
}

// UserData is the aggregate root persisted as a single value. Cycles is
// an append-only archive of closed cycles; CurrentCycle is the one
// being tracked, absent until tracking starts.
type UserData struct {
	Cycles              []Cycle     `json:"cycles"`
	CurrentCycle        *Cycle      `json:"current_cycle,omitempty"`
	AverageCycleLength  int         `json:"average_cycle_length"`
	AveragePeriodLength int         `json:"average_period_length"`
	Preferences         Preferences `json:"preferences"`
}

func DefaultUserData() UserData {
	return UserData{
		Cycles:              []Cycle{},
		AverageCycleLength:  DefaultCycleLength,
		AveragePeriodLength: DefaultPeriodLength,
		Preferences:         DefaultPreferences(),
	}
}
