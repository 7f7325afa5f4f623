package services

import (
	"sort"
	"strings"
	"time"

	"github.com/bloomcycle/bloom/internal/models"
)

var ExportCSVHeaders = []string{"Date", "Period", "Mood", "Symptoms", "Notes"}

// ExportEntry is one logged day flattened for export. Dates use the
// same yyyy-MM-dd form as the day-map keys so exports stay portable.
type ExportEntry struct {
	Date     string   `json:"date"`
	Period   bool     `json:"period"`
	Mood     string   `json:"mood,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

type ExportService struct {
	store    UserDataRepository
	location *time.Location
}

func NewExportService(store UserDataRepository, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{store: store, location: location}
}

// BuildEntries flattens every logged day of the current cycle, ordered
// by date ascending. No current cycle means an empty export, not an
// error.
func (service *ExportService) BuildEntries() ([]ExportEntry, error) {
	data, err := service.store.Load()
	if err != nil {
		return nil, ErrLoadUserData
	}
	if data.CurrentCycle == nil {
		return []ExportEntry{}, nil
	}
	return FlattenCycleDays(*data.CurrentCycle), nil
}

// FlattenCycleDays converts a cycle's day map into sorted export rows.
func FlattenCycleDays(cycle models.Cycle) []ExportEntry {
	keys := make([]string, 0, len(cycle.Days))
	for key := range cycle.Days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]ExportEntry, 0, len(keys))
	for _, key := range keys {
		day := cycle.Days[key]
		entry := ExportEntry{
			Date:     key,
			Period:   day.IsPeriod(),
			Symptoms: day.Symptoms,
		}
		if day.Mood != nil {
			entry.Mood = string(*day.Mood)
		}
		if day.Notes != nil {
			entry.Notes = *day.Notes
		}
		entries = append(entries, entry)
	}
	return entries
}

// CSVRows renders export entries as string rows matching
// ExportCSVHeaders. Symptoms collapse into one semicolon-joined cell.
func CSVRows(entries []ExportEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		period := "no"
		if entry.Period {
			period = "yes"
		}
		rows = append(rows, []string{
			entry.Date,
			period,
			entry.Mood,
			strings.Join(entry.Symptoms, "; "),
			entry.Notes,
		})
	}
	return rows
}
