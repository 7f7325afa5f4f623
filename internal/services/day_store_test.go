package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/bloomcycle/bloom/internal/models"
)

func moodPtr(mood models.MoodType) *models.MoodType { return &mood }
func boolPtr(value bool) *bool                      { return &value }
func stringPtr(value string) *string                { return &value }

func TestUpsertDay_CreatesRecordWithOnlyPatchedFields(t *testing.T) {
	t.Parallel()

	cycle := testCycle(t, "2024-01-01", 5, 28)
	date := mustParseDay(t, "2024-01-03")

	updated := UpsertDay(cycle, date, DayPatch{Mood: moodPtr(models.MoodCalm)}, time.UTC)

	record, found := updated.DayAt(date)
	if !found {
		t.Fatalf("expected record for %s", models.DayKey(date))
	}
	if record.Mood == nil || *record.Mood != models.MoodCalm {
		t.Fatalf("expected mood calm, got %v", record.Mood)
	}
	if record.Period != nil || record.Notes != nil || record.Symptoms != nil {
		t.Fatalf("expected untouched fields to stay absent, got %+v", record)
	}
}

func TestUpsertDay_ShallowMergeLeavesOtherFieldsAlone(t *testing.T) {
	t.Parallel()

	cycle := testCycle(t, "2024-01-01", 5, 28)
	date := mustParseDay(t, "2024-01-02")

	cycle = UpsertDay(cycle, date, DayPatch{Period: boolPtr(true), Notes: stringPtr("cramps in the morning")}, time.UTC)
	cycle = UpsertDay(cycle, date, DayPatch{Mood: moodPtr(models.MoodTired)}, time.UTC)

	record, _ := cycle.DayAt(date)
	if !record.IsPeriod() {
		t.Fatalf("expected period flag to survive mood patch")
	}
	if record.Notes == nil || *record.Notes != "cramps in the morning" {
		t.Fatalf("expected notes to survive mood patch, got %v", record.Notes)
	}
	if record.Mood == nil || *record.Mood != models.MoodTired {
		t.Fatalf("expected mood tired, got %v", record.Mood)
	}
}

func TestUpsertDay_LastWriteWinsForMood(t *testing.T) {
	t.Parallel()

	cycle := testCycle(t, "2024-01-01", 5, 28)
	date := mustParseDay(t, "2024-01-02")

	cycle = UpsertDay(cycle, date, DayPatch{Mood: moodPtr(models.MoodHappy)}, time.UTC)
	cycle = UpsertDay(cycle, date, DayPatch{Mood: moodPtr(models.MoodSad)}, time.UTC)

	record, _ := cycle.DayAt(date)
	if record.Mood == nil || *record.Mood != models.MoodSad {
		t.Fatalf("expected last written mood sad, got %v", record.Mood)
	}
}

func TestUpsertDay_IdempotentExceptSymptomAppends(t *testing.T) {
	t.Parallel()

	cycle := testCycle(t, "2024-01-01", 5, 28)
	date := mustParseDay(t, "2024-01-04")

	fieldPatch := DayPatch{Period: boolPtr(true), Mood: moodPtr(models.MoodAnxious), Notes: stringPtr("heavy day")}
	once := UpsertDay(cycle, date, fieldPatch, time.UTC)
	twice := UpsertDay(once, date, fieldPatch, time.UTC)

	recordOnce, _ := once.DayAt(date)
	recordTwice, _ := twice.DayAt(date)
	if !reflect.DeepEqual(recordOnce, recordTwice) {
		t.Fatalf("field patches must be idempotent: %+v vs %+v", recordOnce, recordTwice)
	}

	// Symptom appends are deliberately NOT idempotent: logging the same
	// symptom twice records it twice.
	symptomPatch := DayPatch{AppendSymptom: stringPtr("cramps")}
	appendedOnce := UpsertDay(cycle, date, symptomPatch, time.UTC)
	appendedTwice := UpsertDay(appendedOnce, date, symptomPatch, time.UTC)

	recordAppended, _ := appendedTwice.DayAt(date)
	if !reflect.DeepEqual(recordAppended.Symptoms, []string{"cramps", "cramps"}) {
		t.Fatalf("expected duplicated symptom entries, got %v", recordAppended.Symptoms)
	}
}

func TestUpsertDay_SymptomsKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	cycle := testCycle(t, "2024-01-01", 5, 28)
	date := mustParseDay(t, "2024-01-05")

	for _, symptom := range []string{"headache", "bloating", "headache", "fatigue"} {
		symptom := symptom
		cycle = UpsertDay(cycle, date, DayPatch{AppendSymptom: &symptom}, time.UTC)
	}

	record, _ := cycle.DayAt(date)
	want := []string{"headache", "bloating", "headache", "fatigue"}
	if !reflect.DeepEqual(record.Symptoms, want) {
		t.Fatalf("expected symptoms %v, got %v", want, record.Symptoms)
	}
}

func TestUpsertDay_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	cycle := testCycle(t, "2024-01-01", 5, 28)
	date := mustParseDay(t, "2024-01-02")
	cycle = UpsertDay(cycle, date, DayPatch{Mood: moodPtr(models.MoodHappy), AppendSymptom: stringPtr("cramps")}, time.UTC)

	updated := UpsertDay(cycle, date, DayPatch{Mood: moodPtr(models.MoodSad), AppendSymptom: stringPtr("nausea")}, time.UTC)

	original, _ := cycle.DayAt(date)
	if *original.Mood != models.MoodHappy {
		t.Fatalf("input cycle mutated: mood became %v", *original.Mood)
	}
	if len(original.Symptoms) != 1 || original.Symptoms[0] != "cramps" {
		t.Fatalf("input cycle mutated: symptoms became %v", original.Symptoms)
	}

	changed, _ := updated.DayAt(date)
	if *changed.Mood != models.MoodSad || len(changed.Symptoms) != 2 {
		t.Fatalf("updated cycle missing changes: %+v", changed)
	}
}

func TestUpsertDay_AcceptsDatesOutsideCycleSpan(t *testing.T) {
	t.Parallel()

	cycle := testCycle(t, "2024-01-01", 5, 28)
	farFuture := mustParseDay(t, "2030-06-15")

	updated := UpsertDay(cycle, farFuture, DayPatch{Notes: stringPtr("unrelated date")}, time.UTC)
	if _, found := updated.DayAt(farFuture); !found {
		t.Fatalf("expected record for out-of-span date")
	}
}
