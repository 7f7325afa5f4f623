package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bloomcycle/bloom/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNoActiveCycle    = errors.New("no active cycle")
	ErrInvalidCycleSpan = errors.New("invalid cycle settings")
	ErrNoteTooLong      = errors.New("note exceeds maximum length")
	ErrLoadUserData     = errors.New("load user data failed")
	ErrSaveUserData     = errors.New("save user data failed")
)

const (
	MinPeriodLength = 1
	MaxPeriodLength = 14
	MinCycleLength  = 21
	MaxCycleLength  = 45
	NotesMaxLength  = 2000
)

// UserDataRepository is the durable-state collaborator. The whole
// aggregate goes through it as one value: loaded once per operation,
// written back after every mutation.
type UserDataRepository interface {
	Load() (models.UserData, error)
	Save(data models.UserData) error
}

// TrackerService owns every read and mutation of the tracked state.
// All mutations follow the same shape: load the aggregate, apply a pure
// update, save the result.
type TrackerService struct {
	store    UserDataRepository
	location *time.Location
}

func NewTrackerService(store UserDataRepository, location *time.Location) *TrackerService {
	if location == nil {
		location = time.UTC
	}
	return &TrackerService{store: store, location: location}
}

// Snapshot is the "today" view: the aggregate plus the derivations the
// dashboard needs.
type Snapshot struct {
	Data         models.UserData
	CurrentPhase *models.CyclePhase
	TodayRecord  *models.CycleDay
	CurrentMood  *models.MoodType
}

func (service *TrackerService) Snapshot(now time.Time) (Snapshot, error) {
	data, err := service.load()
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{Data: data}
	cycle := data.CurrentCycle
	if cycle == nil {
		return snapshot, nil
	}

	if phase, ok := ClassifyPhase(*cycle, now, service.location); ok {
		snapshot.CurrentPhase = &phase
	}
	if today, found := cycle.DayAt(DateAtLocation(now, service.location)); found {
		record := today
		snapshot.TodayRecord = &record
		snapshot.CurrentMood = today.Mood
	}
	return snapshot, nil
}

// StartCycle begins tracking from the given day (today when absent).
// An already-running cycle is closed the day before the new start and
// archived. The new cycle is seeded from the stored averages and its
// first day is marked as a period day.
func (service *TrackerService) StartCycle(startDate *time.Time, now time.Time) (models.Cycle, error) {
	data, err := service.load()
	if err != nil {
		return models.Cycle{}, err
	}

	start := DateAtLocation(now, service.location)
	if startDate != nil {
		start = DateAtLocation(*startDate, service.location)
	}

	if data.CurrentCycle != nil {
		closed := *data.CurrentCycle
		endDate := start.AddDate(0, 0, -1)
		closed.EndDate = &endDate
		data.Cycles = append(data.Cycles, closed)
	}

	cycle := models.Cycle{
		ID:           uuid.NewString(),
		StartDate:    start,
		PeriodLength: data.AveragePeriodLength,
		CycleLength:  data.AverageCycleLength,
		Days:         map[string]models.CycleDay{},
	}
	periodFlag := true
	cycle = UpsertDay(cycle, start, DayPatch{Period: &periodFlag}, service.location)

	data.CurrentCycle = &cycle
	if err := service.save(data); err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}

// UpdateCycleSettings adjusts the expected lengths on the current cycle
// and the stored averages that seed the next one.
func (service *TrackerService) UpdateCycleSettings(cycleLength int, periodLength int) (models.UserData, error) {
	if cycleLength < MinCycleLength || cycleLength > MaxCycleLength {
		return models.UserData{}, ErrInvalidCycleSpan
	}
	if periodLength < MinPeriodLength || periodLength > MaxPeriodLength {
		return models.UserData{}, ErrInvalidCycleSpan
	}

	data, err := service.load()
	if err != nil {
		return models.UserData{}, err
	}

	data.AverageCycleLength = cycleLength
	data.AveragePeriodLength = periodLength
	if data.CurrentCycle != nil {
		data.CurrentCycle.CycleLength = cycleLength
		data.CurrentCycle.PeriodLength = periodLength
	}

	if err := service.save(data); err != nil {
		return models.UserData{}, err
	}
	return data, nil
}

func (service *TrackerService) LogMood(date time.Time, mood models.MoodType) (models.CycleDay, error) {
	return service.patchDay(date, DayPatch{Mood: &mood})
}

func (service *TrackerService) SetPeriodDay(date time.Time, isPeriod bool) (models.CycleDay, error) {
	return service.patchDay(date, DayPatch{Period: &isPeriod})
}

// AddNote stores free text for a day. Length is counted in runes so a
// multi-byte note is never cut mid-character; oversized notes are
// rejected rather than silently shortened.
func (service *TrackerService) AddNote(date time.Time, note string) (models.CycleDay, error) {
	trimmed := strings.TrimSpace(note)
	if utf8.RuneCountInString(trimmed) > NotesMaxLength {
		return models.CycleDay{}, ErrNoteTooLong
	}
	return service.patchDay(date, DayPatch{Notes: &trimmed})
}

func (service *TrackerService) AddSymptom(date time.Time, symptom string) (models.CycleDay, error) {
	trimmed := strings.TrimSpace(symptom)
	return service.patchDay(date, DayPatch{AppendSymptom: &trimmed})
}

func (service *TrackerService) patchDay(date time.Time, patch DayPatch) (models.CycleDay, error) {
	data, err := service.load()
	if err != nil {
		return models.CycleDay{}, err
	}
	if data.CurrentCycle == nil {
		return models.CycleDay{}, ErrNoActiveCycle
	}

	updated := UpsertDay(*data.CurrentCycle, date, patch, service.location)
	data.CurrentCycle = &updated
	if err := service.save(data); err != nil {
		return models.CycleDay{}, err
	}

	record, _ := updated.DayAt(DateAtLocation(date, service.location))
	return record, nil
}

// DayView pairs a calendar date with whatever was logged and the phase
// the classifier assigns it.
type DayView struct {
	Date   time.Time          `json:"date"`
	Phase  *models.CyclePhase `json:"phase,omitempty"`
	Record *models.CycleDay   `json:"record,omitempty"`
}

// DaysRange walks from `from` to `to` inclusive and builds the calendar
// view. Without an active cycle every day comes back bare.
func (service *TrackerService) DaysRange(from time.Time, to time.Time) ([]DayView, error) {
	data, err := service.load()
	if err != nil {
		return nil, err
	}

	start := DateAtLocation(from, service.location)
	end := DateAtLocation(to, service.location)

	views := make([]DayView, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		view := DayView{Date: day}
		if cycle := data.CurrentCycle; cycle != nil {
			if phase, ok := ClassifyPhase(*cycle, day, service.location); ok {
				view.Phase = &phase
			}
			if record, found := cycle.DayAt(day); found {
				entry := record
				view.Record = &entry
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// DayRecord reports the logged record for one date. A record whose
// every optional field is absent counts as not found: clearing the last
// fact on a day reads back the same as never logging it.
func (service *TrackerService) DayRecord(date time.Time) (models.CycleDay, bool, error) {
	data, err := service.load()
	if err != nil {
		return models.CycleDay{}, false, err
	}
	if data.CurrentCycle == nil {
		return models.CycleDay{}, false, nil
	}
	record, found := data.CurrentCycle.DayAt(DateAtLocation(date, service.location))
	return record, found && DayHasData(record), nil
}

// InsightsOverview is the aggregator output plus the cross-cycle
// figures shown alongside it.
type InsightsOverview struct {
	HasActiveCycle      bool                        `json:"has_active_cycle"`
	CurrentPhase        *models.CyclePhase          `json:"current_phase,omitempty"`
	CycleStartDate      *time.Time                  `json:"cycle_start_date,omitempty"`
	CycleLength         int                         `json:"cycle_length"`
	Insights            CycleInsights               `json:"insights"`
	MoodPercentages     map[models.MoodType]float64 `json:"mood_percentages"`
	AverageCycleLength  int                         `json:"average_cycle_length"`
	AveragePeriodLength int                         `json:"average_period_length"`
	CyclesTracked       int                         `json:"cycles_tracked"`
}

func (service *TrackerService) Insights(now time.Time) (InsightsOverview, error) {
	data, err := service.load()
	if err != nil {
		return InsightsOverview{}, err
	}

	overview := InsightsOverview{
		AverageCycleLength:  data.AverageCycleLength,
		AveragePeriodLength: data.AveragePeriodLength,
		CyclesTracked:       len(data.Cycles),
		MoodPercentages:     map[models.MoodType]float64{},
		Insights:            CycleInsights{MoodFrequency: map[models.MoodType]int{}},
	}

	cycle := data.CurrentCycle
	if cycle == nil {
		return overview, nil
	}

	overview.HasActiveCycle = true
	startDate := DateAtLocation(cycle.StartDate, service.location)
	overview.CycleStartDate = &startDate
	overview.CycleLength = cycle.CycleLength
	overview.Insights = BuildCycleInsights(*cycle, now, service.location)
	if phase, ok := ClassifyPhase(*cycle, now, service.location); ok {
		overview.CurrentPhase = &phase
	}
	for mood, count := range overview.Insights.MoodFrequency {
		if count > 0 {
			overview.MoodPercentages[mood] = MoodDistributionPercent(overview.Insights.MoodFrequency, mood, overview.Insights.DaysLogged)
		}
	}
	return overview, nil
}

func (service *TrackerService) Preferences() (models.Preferences, error) {
	data, err := service.load()
	if err != nil {
		return models.Preferences{}, err
	}
	return data.Preferences, nil
}

func (service *TrackerService) UpdatePreferences(preferences models.Preferences) (models.Preferences, error) {
	data, err := service.load()
	if err != nil {
		return models.Preferences{}, err
	}
	data.Preferences = preferences
	if err := service.save(data); err != nil {
		return models.Preferences{}, err
	}
	return data.Preferences, nil
}

func (service *TrackerService) Location() *time.Location {
	return service.location
}

func (service *TrackerService) load() (models.UserData, error) {
	data, err := service.store.Load()
	if err != nil {
		return models.UserData{}, ErrLoadUserData
	}
	return data, nil
}

func (service *TrackerService) save(data models.UserData) error {
	if err := service.store.Save(data); err != nil {
		return ErrSaveUserData
	}
	return nil
}
