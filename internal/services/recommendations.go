package services

import "github.com/bloomcycle/bloom/internal/models"

// RecommendationService answers mood/phase queries against a static
// catalog. The catalog is scanned in order on every query; results
// always preserve catalog order.
type RecommendationService struct {
	catalog []models.FoodRecommendation
}

func NewRecommendationService(catalog []models.FoodRecommendation) *RecommendationService {
	return &RecommendationService{catalog: catalog}
}

func (service *RecommendationService) Catalog() []models.FoodRecommendation {
	return service.catalog
}

func (service *RecommendationService) ByMood(mood models.MoodType) []models.FoodRecommendation {
	results := make([]models.FoodRecommendation, 0)
	for _, entry := range service.catalog {
		if containsMood(entry.ForMoods, mood) {
			results = append(results, entry)
		}
	}
	return results
}

func (service *RecommendationService) ByPhase(phase models.CyclePhase) []models.FoodRecommendation {
	results := make([]models.FoodRecommendation, 0)
	for _, entry := range service.catalog {
		if containsPhase(entry.ForPhases, phase) {
			results = append(results, entry)
		}
	}
	return results
}

// Personalized intersects the provided filters. With neither mood nor
// phase there is nothing to personalize on, so the result is empty
// rather than the whole catalog; the unfiltered table is a separate
// browse surface.
func (service *RecommendationService) Personalized(mood *models.MoodType, phase *models.CyclePhase) []models.FoodRecommendation {
	results := make([]models.FoodRecommendation, 0)
	if mood == nil && phase == nil {
		return results
	}

	for _, entry := range service.catalog {
		if mood != nil && !containsMood(entry.ForMoods, *mood) {
			continue
		}
		if phase != nil && !containsPhase(entry.ForPhases, *phase) {
			continue
		}
		results = append(results, entry)
	}
	return results
}

func containsMood(moods []models.MoodType, needle models.MoodType) bool {
	for _, mood := range moods {
		if mood == needle {
			return true
		}
	}
	return false
}

func containsPhase(phases []models.CyclePhase, needle models.CyclePhase) bool {
	for _, phase := range phases {
		if phase == needle {
			return true
		}
	}
	return false
}
