package models

// FoodRecommendation is one row of the static catalog. Display fields
// (name, description, benefits, image, tags) never influence queries;
// ForMoods and ForPhases are the only filterable attributes.
type FoodRecommendation struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Benefits    string       `json:"benefits"`
	ImageURL    string       `json:"image_url,omitempty"`
	Tags        []string     `json:"tags"`
	ForMoods    []MoodType   `json:"for_moods"`
	ForPhases   []CyclePhase `json:"for_phases"`
}

// DefaultFoodCatalog returns the built-in recommendation table. The
// catalog is read-only; callers must not mutate the returned entries.
func DefaultFoodCatalog() []FoodRecommendation {
	return []FoodRecommendation{
		{
			ID:          "1",
			Name:        "Dark Chocolate",
			Description: "Rich in magnesium and antioxidants",
			Benefits:    "Boosts serotonin levels and reduces stress",
			ImageURL:    "/static/foods/dark-chocolate.svg",
			Tags:        []string{"sweet", "treat", "antioxidants"},
			ForMoods:    []MoodType{MoodAnxious, MoodSad, MoodStressed},
			ForPhases:   []CyclePhase{PhaseLuteal, PhaseMenstrual},
		},
		{
			ID:          "2",
			Name:        "Salmon",
			Description: "High in omega-3 fatty acids",
			Benefits:    "Reduces inflammation and improves mood",
			ImageURL:    "/static/foods/salmon.svg",
			Tags:        []string{"protein", "dinner", "omega-3"},
			ForMoods:    []MoodType{MoodIrritable, MoodAnxious, MoodSad},
			ForPhases:   []CyclePhase{PhaseFollicular, PhaseLuteal},
		},
		{
			ID:          "3",
			Name:        "Bananas",
			Description: "Rich in potassium and vitamin B6",
			Benefits:    "Regulates blood sugar and improves energy",
			ImageURL:    "/static/foods/bananas.svg",
			Tags:        []string{"fruit", "snack", "energy"},
			ForMoods:    []MoodType{MoodTired, MoodIrritable, MoodSad},
			ForPhases:   []CyclePhase{PhaseMenstrual, PhaseFollicular},
		},
		{
			ID:          "4",
			Name:        "Leafy Greens",
			Description: "High in iron, calcium and magnesium",
			Benefits:    "Helps with iron loss during menstruation",
			ImageURL:    "/static/foods/leafy-greens.svg",
			Tags:        []string{"vegetables", "iron", "calcium"},
			ForMoods:    []MoodType{MoodTired, MoodAnxious},
			ForPhases:   []CyclePhase{PhaseMenstrual, PhaseFollicular},
		},
		{
			ID:          "5",
			Name:        "Yogurt",
			Description: "Probiotic-rich food with calcium",
			Benefits:    "Improves gut health which affects mood",
			ImageURL:    "/static/foods/yogurt.svg",
			Tags:        []string{"breakfast", "snack", "probiotics"},
			ForMoods:    []MoodType{MoodIrritable, MoodAnxious, MoodStressed},
			ForPhases:   []CyclePhase{PhaseLuteal, PhaseFollicular},
		},
		{
			ID:          "6",
			Name:        "Avocado",
			Description: "Healthy fats and B vitamins",
			Benefits:    "Stabilizes mood and hormone levels",
			ImageURL:    "/static/foods/avocado.svg",
			Tags:        []string{"healthy fats", "breakfast", "snack"},
			ForMoods:    []MoodType{MoodIrritable, MoodAnxious, MoodStressed},
			ForPhases:   []CyclePhase{PhaseLuteal, PhaseFollicular},
		},
		{
			ID:          "7",
			Name:        "Chamomile Tea",
			Description: "Herbal tea with calming properties",
			Benefits:    "Reduces anxiety and promotes sleep",
			ImageURL:    "/static/foods/chamomile-tea.svg",
			Tags:        []string{"tea", "relaxing", "evening"},
			ForMoods:    []MoodType{MoodAnxious, MoodStressed, MoodIrritable},
			ForPhases:   []CyclePhase{PhaseLuteal, PhaseMenstrual},
		},
		{
			ID:          "8",
			Name:        "Oatmeal",
			Description: "Complex carbs and fiber",
			Benefits:    "Stabilizes blood sugar and improves mood",
			ImageURL:    "/static/foods/oatmeal.svg",
			Tags:        []string{"breakfast", "fiber", "comfort food"},
			ForMoods:    []MoodType{MoodSad, MoodIrritable, MoodTired},
			ForPhases:   []CyclePhase{PhaseFollicular, PhaseOvulation},
		},
		{
			ID:          "9",
			Name:        "Berries",
			Description: "High in antioxidants and vitamins",
			Benefits:    "Fights inflammation and boosts energy",
			ImageURL:    "/static/foods/berries.svg",
			Tags:        []string{"fruit", "antioxidants", "snack"},
			ForMoods:    []MoodType{MoodHappy, MoodEnergetic, MoodTired},
			ForPhases:   []CyclePhase{PhaseFollicular, PhaseOvulation},
		},
		{
			ID:          "10",
			Name:        "Ginger Tea",
			Description: "Anti-inflammatory properties",
			Benefits:    "Reduces cramps and nausea during menstruation",
			ImageURL:    "/static/foods/ginger-tea.svg",
			Tags:        []string{"tea", "digestive", "anti-inflammatory"},
			ForMoods:    []MoodType{MoodIrritable, MoodTired},
			ForPhases:   []CyclePhase{PhaseMenstrual},
		},
	}
}
