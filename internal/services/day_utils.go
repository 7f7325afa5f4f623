package services

import (
	"strings"
	"time"

	"github.com/bloomcycle/bloom/internal/models"
)

// DateAtLocation truncates a timestamp to midnight of its calendar day
// in the given location. All cycle arithmetic works on these values.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// WholeDaysBetween returns the number of whole calendar days from `to`
// up to `from` (from minus to). Negative when `from` precedes `to`.
// Time of day is discarded, and the calendar dates are re-anchored in
// UTC before subtracting so that 23- and 25-hour DST days still count
// as one day.
func WholeDaysBetween(from time.Time, to time.Time, location *time.Location) int {
	start := DateAtLocation(to, location)
	end := DateAtLocation(from, location)
	startUTC := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endUTC := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endUTC.Sub(startUTC) / (24 * time.Hour))
}

// ParseDay parses a yyyy-MM-dd string into a midnight date.
func ParseDay(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(models.DayKeyLayout, strings.TrimSpace(value), location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// DayHasData reports whether a record carries any logged fact. A record
// with every optional field absent is indistinguishable from no record.
func DayHasData(day models.CycleDay) bool {
	if day.IsPeriod() {
		return true
	}
	if day.Mood != nil {
		return true
	}
	if len(day.Symptoms) > 0 {
		return true
	}
	return day.Notes != nil && strings.TrimSpace(*day.Notes) != ""
}
