package domain

// PlanOrigin distinguishes a model-generated plan from the static fallback.
type PlanOrigin string

const (
	OriginGenerated PlanOrigin = "generated"
	OriginFallback  PlanOrigin = "fallback"
)

// Meal is a single dish inside a diet plan. Meals have no identity of their
// own; they are owned by the plan that contains them.
type Meal struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Calories    float64 `bson:"calories" json:"calories"`
	Protein     float64 `bson:"protein" json:"protein"`
	Fat         float64 `bson:"fat" json:"fat"`
	Carbs       float64 `bson:"carbs" json:"carbs"`
}

// Meals holds the fixed breakfast/lunch/dinner triad plus an ordered list of
// optional snacks.
type Meals struct {
	Breakfast Meal   `bson:"breakfast" json:"breakfast"`
	Lunch     Meal   `bson:"lunch" json:"lunch"`
	Dinner    Meal   `bson:"dinner" json:"dinner"`
	Snacks    []Meal `bson:"snacks" json:"snacks"`
}

// DietPlan is a finished one-day plan. Once assembled it is immutable; the
// repository only ever inserts plans, never updates them.
type DietPlan struct {
	ID            string   `bson:"id" json:"id"`
	CreatedAt     string   `bson:"createdAt" json:"createdAt"` // RFC 3339, UTC
	Title         string   `bson:"title" json:"title"`
	DailyCalories float64  `bson:"dailyCalories" json:"dailyCalories"`
	Meals         Meals    `bson:"meals" json:"meals"`
	GroceryList   []string `bson:"groceryList" json:"groceryList"`
}
