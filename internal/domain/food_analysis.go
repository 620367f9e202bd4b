package domain

// FoodAnalysis is the nutrition estimate produced by scanning a food photo.
// Unlike diet plans there is no fallback for analyses: a wrong guess would be
// actively misleading, so failures surface to the caller instead.
type FoodAnalysis struct {
	FoodName    string  `json:"foodName"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	HealthScore int     `json:"healthScore"` // 1-10, 10 is healthiest
	Suggestion  string  `json:"suggestion"`

	// ImageURL is a temporary download link to the archived scan image.
	// Empty when archival is disabled or failed.
	ImageURL string `json:"imageUrl,omitempty"`
}
