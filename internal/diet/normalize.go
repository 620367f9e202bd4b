package diet

import (
	"encoding/json"
	"strings"

	"alcyxob/coach-diet/internal/domain"
)

// Sentinel values applied when the model omits optional plan fields.
const (
	defaultPlanTitle     = "Plan Generado"
	defaultDailyCalories = 2000
)

// PlanContent is a diet plan before identity and timestamp are attached.
// Both the normalizer and the fallback provider produce this shape; the
// assembler turns it into a domain.DietPlan.
type PlanContent struct {
	Title         string
	DailyCalories float64
	Meals         domain.Meals
	GroceryList   []string
}

// planPayload mirrors the JSON object the prompt asks the model for. The
// required meals are pointers so a missing object is distinguishable from a
// zero-valued one; snacks stay raw so a wrong-typed value degrades to an
// empty list instead of sinking the whole plan.
type planPayload struct {
	Title         string  `json:"title"`
	DailyCalories float64 `json:"dailyCalories"`
	Meals         struct {
		Breakfast *domain.Meal    `json:"breakfast"`
		Lunch     *domain.Meal    `json:"lunch"`
		Dinner    *domain.Meal    `json:"dinner"`
		Snacks    json.RawMessage `json:"snacks"`
	} `json:"meals"`
	GroceryList []string `json:"groceryList"`
}

// StripFences removes the markdown code-block markers models like to wrap
// around JSON output, then trims surrounding whitespace.
func StripFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// NormalizePlanResponse parses raw model output into plan content. Parse
// failures and missing or malformed required meals are transient errors, the
// same class as an upstream failure: either way the model did not follow
// instructions. Missing optional fields never reject a plan; they default.
func NormalizePlanResponse(raw string) (PlanContent, error) {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return PlanContent{}, newTransientError("model returned an empty response", nil)
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return PlanContent{}, newTransientError("model response is not valid JSON", err)
	}

	if err := requireMeal("breakfast", payload.Meals.Breakfast); err != nil {
		return PlanContent{}, err
	}
	if err := requireMeal("lunch", payload.Meals.Lunch); err != nil {
		return PlanContent{}, err
	}
	if err := requireMeal("dinner", payload.Meals.Dinner); err != nil {
		return PlanContent{}, err
	}

	content := PlanContent{
		Title:         payload.Title,
		DailyCalories: payload.DailyCalories,
		Meals: domain.Meals{
			Breakfast: *payload.Meals.Breakfast,
			Lunch:     *payload.Meals.Lunch,
			Dinner:    *payload.Meals.Dinner,
			Snacks:    decodeSnacks(payload.Meals.Snacks),
		},
		GroceryList: payload.GroceryList,
	}

	if content.Title == "" {
		content.Title = defaultPlanTitle
	}
	if content.DailyCalories <= 0 {
		content.DailyCalories = defaultDailyCalories
	}
	if content.GroceryList == nil {
		content.GroceryList = []string{}
	}
	return content, nil
}

func requireMeal(slot string, meal *domain.Meal) error {
	if meal == nil {
		return newTransientError("model response is missing the "+slot+" meal", nil)
	}
	if meal.Name == "" {
		return newTransientError("model response has an unnamed "+slot+" meal", nil)
	}
	if meal.Calories < 0 || meal.Protein < 0 || meal.Fat < 0 || meal.Carbs < 0 {
		return newTransientError("model response has negative macros for the "+slot+" meal", nil)
	}
	return nil
}

// decodeSnacks tolerates a missing, null or wrong-typed snacks value by
// returning an empty list.
func decodeSnacks(raw json.RawMessage) []domain.Meal {
	if len(raw) == 0 {
		return []domain.Meal{}
	}
	var snacks []domain.Meal
	if err := json.Unmarshal(raw, &snacks); err != nil || snacks == nil {
		return []domain.Meal{}
	}
	return snacks
}
