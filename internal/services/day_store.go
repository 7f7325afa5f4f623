package services

import (
	"time"

	"github.com/bloomcycle/bloom/internal/models"
)

// DayPatch is a partial day record. Nil fields are left untouched by
// the merge; AppendSymptom adds one entry to the symptom sequence
// rather than replacing it.
type DayPatch struct {
	Period        *bool
	Mood          *models.MoodType
	Notes         *string
	AppendSymptom *string
}

// UpsertDay merges a patch into the record for the given date and
// returns a new Cycle value; the input cycle is never mutated, so the
// caller can compare and persist. Missing records are created with only
// the patched fields set. Symptom appends keep order and duplicates.
// Dates outside the cycle's span are accepted as-is.
func UpsertDay(cycle models.Cycle, date time.Time, patch DayPatch, location *time.Location) models.Cycle {
	day := DateAtLocation(date, location)
	key := models.DayKey(day)

	days := make(map[string]models.CycleDay, len(cycle.Days)+1)
	for existingKey, existingDay := range cycle.Days {
		days[existingKey] = existingDay
	}

	record, found := days[key]
	if !found {
		record = models.CycleDay{Date: day}
	}

	if patch.Period != nil {
		value := *patch.Period
		record.Period = &value
	}
	if patch.Mood != nil {
		value := *patch.Mood
		record.Mood = &value
	}
	if patch.Notes != nil {
		value := *patch.Notes
		record.Notes = &value
	}
	if patch.AppendSymptom != nil {
		symptoms := make([]string, 0, len(record.Symptoms)+1)
		symptoms = append(symptoms, record.Symptoms...)
		symptoms = append(symptoms, *patch.AppendSymptom)
		record.Symptoms = symptoms
	}

	days[key] = record

	updated := cycle
	updated.Days = days
	return updated
}
