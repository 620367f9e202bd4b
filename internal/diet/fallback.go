package diet

import "alcyxob/coach-diet/internal/domain"

// FallbackPlan returns the static plan served when the model is unreachable,
// unauthenticated or returns something unparsable. The content is fixed and
// hand-authored: roughly 2000 kcal with balanced macros. Each call returns a
// fresh value so callers can never mutate a shared copy.
func FallbackPlan() PlanContent {
	return PlanContent{
		Title:         "Plan Equilibrado Estándar",
		DailyCalories: 2000,
		Meals: domain.Meals{
			Breakfast: domain.Meal{
				Name:        "Avena con plátano y nueces",
				Description: "Avena cocida en leche, rodajas de plátano y un puñado de nueces",
				Calories:    450,
				Protein:     18,
				Fat:         14,
				Carbs:       62,
			},
			Lunch: domain.Meal{
				Name:        "Pechuga de pollo con arroz integral",
				Description: "Pechuga a la plancha, arroz integral y brócoli al vapor",
				Calories:    650,
				Protein:     45,
				Fat:         16,
				Carbs:       70,
			},
			Dinner: domain.Meal{
				Name:        "Salmón al horno con ensalada",
				Description: "Filete de salmón con ensalada verde y aceite de oliva",
				Calories:    550,
				Protein:     38,
				Fat:         28,
				Carbs:       25,
			},
			Snacks: []domain.Meal{
				{
					Name:        "Yogur griego con almendras",
					Description: "Yogur griego natural con un puñado de almendras",
					Calories:    350,
					Protein:     20,
					Fat:         18,
					Carbs:       24,
				},
			},
		},
		GroceryList: []string{
			"Avena",
			"Plátano",
			"Nueces",
			"Leche",
			"Pechuga de pollo",
			"Arroz integral",
			"Brócoli",
			"Salmón",
			"Lechuga",
			"Aceite de oliva",
			"Yogur griego",
			"Almendras",
		},
	}
}
