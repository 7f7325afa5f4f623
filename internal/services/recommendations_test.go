package services

import (
	"testing"

	"github.com/bloomcycle/bloom/internal/models"
)

func catalogIDs(entries []models.FoodRecommendation) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

func TestByMood_FiltersInCatalogOrder(t *testing.T) {
	t.Parallel()

	service := NewRecommendationService(models.DefaultFoodCatalog())

	got := catalogIDs(service.ByMood(models.MoodTired))
	want := []string{"3", "4", "8", "9", "10"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for index := range want {
		if got[index] != want[index] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestByPhase_FiltersInCatalogOrder(t *testing.T) {
	t.Parallel()

	service := NewRecommendationService(models.DefaultFoodCatalog())

	got := catalogIDs(service.ByPhase(models.PhaseOvulation))
	want := []string{"8", "9"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for index := range want {
		if got[index] != want[index] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPersonalized_RequiresAtLeastOneFilter(t *testing.T) {
	t.Parallel()

	service := NewRecommendationService(models.DefaultFoodCatalog())

	got := service.Personalized(nil, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result without context, got %d entries", len(got))
	}
}

func TestPersonalized_IntersectsMoodAndPhase(t *testing.T) {
	t.Parallel()

	service := NewRecommendationService(models.DefaultFoodCatalog())
	mood := models.MoodAnxious
	phase := models.PhaseMenstrual

	got := catalogIDs(service.Personalized(&mood, &phase))
	// Anxious: 1,2,4,5,6,7. Menstrual: 1,3,4,7,10. Intersection keeps order.
	want := []string{"1", "4", "7"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for index := range want {
		if got[index] != want[index] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPersonalized_SingleFilterActsAlone(t *testing.T) {
	t.Parallel()

	service := NewRecommendationService(models.DefaultFoodCatalog())
	mood := models.MoodHappy

	byMoodOnly := service.Personalized(&mood, nil)
	direct := service.ByMood(mood)
	if len(byMoodOnly) != len(direct) {
		t.Fatalf("expected personalized(mood) to match byMood: %d vs %d", len(byMoodOnly), len(direct))
	}
}

func TestPersonalized_NoMatchIsEmptyNotError(t *testing.T) {
	t.Parallel()

	service := NewRecommendationService(models.DefaultFoodCatalog())
	mood := models.MoodHappy
	phase := models.PhaseMenstrual

	// Nothing in the catalog pairs happy with menstrual.
	got := service.Personalized(&mood, &phase)
	if len(got) != 0 {
		t.Fatalf("expected empty intersection, got %v", catalogIDs(got))
	}
}

func TestQueries_MonotonicUnderCatalogGrowth(t *testing.T) {
	t.Parallel()

	catalog := models.DefaultFoodCatalog()
	mood := models.MoodStressed
	phase := models.PhaseLuteal

	previousByMood := 0
	previousByPhase := 0
	for size := 0; size <= len(catalog); size++ {
		service := NewRecommendationService(catalog[:size])
		byMood := len(service.ByMood(mood))
		byPhase := len(service.ByPhase(phase))
		if byMood < previousByMood {
			t.Fatalf("byMood shrank from %d to %d at catalog size %d", previousByMood, byMood, size)
		}
		if byPhase < previousByPhase {
			t.Fatalf("byPhase shrank from %d to %d at catalog size %d", previousByPhase, byPhase, size)
		}
		previousByMood = byMood
		previousByPhase = byPhase
	}
}
