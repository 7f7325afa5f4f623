package services

import (
	"testing"
	"time"

	"github.com/bloomcycle/bloom/internal/models"
)

func TestWholeDaysBetween(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2024-01-01", to: "2024-01-01", want: 0},
		{name: "next day", from: "2024-01-02", to: "2024-01-01", want: 1},
		{name: "negative when from precedes to", from: "2024-01-01", to: "2024-01-05", want: -4},
		{name: "across month boundary", from: "2024-02-03", to: "2024-01-31", want: 3},
		{name: "across leap day", from: "2024-03-01", to: "2024-02-28", want: 2},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			got := WholeDaysBetween(mustParseDay(t, testCase.from), mustParseDay(t, testCase.to), time.UTC)
			if got != testCase.want {
				t.Fatalf("expected %d days, got %d", testCase.want, got)
			}
		})
	}
}

func TestWholeDaysBetween_DiscardsTimeOfDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2024, 1, 2, 0, 15, 0, 0, time.UTC)
	night := time.Date(2024, 1, 1, 23, 50, 0, 0, time.UTC)

	if got := WholeDaysBetween(morning, night, time.UTC); got != 1 {
		t.Fatalf("expected 1 whole day between adjacent dates, got %d", got)
	}
}

func TestWholeDaysBetween_AcrossDSTTransitions(t *testing.T) {
	t.Parallel()

	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	cases := []struct {
		name string
		from string
		to   string
		want int
	}{
		// 2024-03-10 is a 23-hour day, 2024-11-03 a 25-hour day.
		{name: "across spring forward", from: "2024-03-15", to: "2024-03-01", want: 14},
		{name: "across fall back", from: "2024-11-10", to: "2024-11-01", want: 9},
		{name: "spring forward day itself", from: "2024-03-11", to: "2024-03-10", want: 1},
		{name: "negative across spring forward", from: "2024-03-01", to: "2024-03-15", want: -14},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			from, err := ParseDay(testCase.from, location)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			to, err := ParseDay(testCase.to, location)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := WholeDaysBetween(from, to, location); got != testCase.want {
				t.Fatalf("expected %d days, got %d", testCase.want, got)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	parsed, err := ParseDay("2024-06-09", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if models.DayKey(parsed) != "2024-06-09" {
		t.Fatalf("expected round-trip key 2024-06-09, got %s", models.DayKey(parsed))
	}

	if _, err := ParseDay("not-a-date", time.UTC); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestDayHasData(t *testing.T) {
	t.Parallel()

	date := mustParseDay(t, "2024-01-01")
	empty := ""

	cases := []struct {
		name string
		day  models.CycleDay
		want bool
	}{
		{name: "empty record", day: models.CycleDay{Date: date}, want: false},
		{name: "period flag false", day: models.CycleDay{Date: date, Period: boolPtr(false)}, want: false},
		{name: "period flag true", day: models.CycleDay{Date: date, Period: boolPtr(true)}, want: true},
		{name: "mood set", day: models.CycleDay{Date: date, Mood: moodPtr(models.MoodCalm)}, want: true},
		{name: "blank notes", day: models.CycleDay{Date: date, Notes: &empty}, want: false},
		{name: "real notes", day: models.CycleDay{Date: date, Notes: stringPtr("slept badly")}, want: true},
		{name: "symptoms", day: models.CycleDay{Date: date, Symptoms: []string{"cramps"}}, want: true},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if got := DayHasData(testCase.day); got != testCase.want {
				t.Fatalf("expected %v, got %v", testCase.want, got)
			}
		})
	}
}
