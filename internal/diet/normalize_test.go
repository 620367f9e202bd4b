package diet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMealsJSON = `"meals":{
	"breakfast":{"name":"Tostadas","description":"Con tomate","calories":400,"protein":15,"fat":10,"carbs":55},
	"lunch":{"name":"Lentejas","description":"Guiso de lentejas","calories":650,"protein":30,"fat":12,"carbs":80},
	"dinner":{"name":"Tortilla","description":"Tortilla francesa","calories":450,"protein":25,"fat":20,"carbs":30}
}`

func TestNormalizeStripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"title\":\"X\",\"dailyCalories\":1800," + validMealsJSON + "}\n```"

	content, err := NormalizePlanResponse(raw)
	require.NoError(t, err)

	assert.Equal(t, "X", content.Title)
	assert.Equal(t, float64(1800), content.DailyCalories)
	assert.Equal(t, "Tostadas", content.Meals.Breakfast.Name)
	assert.Equal(t, []string{}, content.GroceryList)
	assert.Empty(t, content.Meals.Snacks)
	assert.NotNil(t, content.Meals.Snacks)
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	_, err := NormalizePlanResponse("Lo siento, no puedo ayudar con eso.")
	require.Error(t, err)
	assert.Equal(t, KindTransient, KindOf(err))
}

func TestNormalizeRejectsEmptyResponse(t *testing.T) {
	_, err := NormalizePlanResponse("```json\n```")
	require.Error(t, err)
	assert.Equal(t, KindTransient, KindOf(err))
}

func TestNormalizeRejectsMissingRequiredMeal(t *testing.T) {
	raw := `{"title":"X","dailyCalories":1800,"meals":{
		"breakfast":{"name":"Tostadas","description":"","calories":400,"protein":15,"fat":10,"carbs":55},
		"dinner":{"name":"Tortilla","description":"","calories":450,"protein":25,"fat":20,"carbs":30}
	}}`

	_, err := NormalizePlanResponse(raw)
	require.Error(t, err)
	assert.Equal(t, KindTransient, KindOf(err))
	assert.Contains(t, err.Error(), "lunch")
}

func TestNormalizeRejectsNegativeMacros(t *testing.T) {
	raw := `{"meals":{
		"breakfast":{"name":"Tostadas","description":"","calories":-400,"protein":15,"fat":10,"carbs":55},
		"lunch":{"name":"Lentejas","description":"","calories":650,"protein":30,"fat":12,"carbs":80},
		"dinner":{"name":"Tortilla","description":"","calories":450,"protein":25,"fat":20,"carbs":30}
	}}`

	_, err := NormalizePlanResponse(raw)
	require.Error(t, err)
	assert.Equal(t, KindTransient, KindOf(err))
}

func TestNormalizeDefaultsOptionalFields(t *testing.T) {
	raw := "{" + validMealsJSON + "}"

	content, err := NormalizePlanResponse(raw)
	require.NoError(t, err)

	assert.Equal(t, "Plan Generado", content.Title)
	assert.Equal(t, float64(2000), content.DailyCalories)
	assert.Equal(t, []string{}, content.GroceryList)
}

func TestNormalizeToleratesWrongTypedSnacks(t *testing.T) {
	raw := `{"title":"X","dailyCalories":1500,"meals":{
		"breakfast":{"name":"Tostadas","description":"","calories":400,"protein":15,"fat":10,"carbs":55},
		"lunch":{"name":"Lentejas","description":"","calories":650,"protein":30,"fat":12,"carbs":80},
		"dinner":{"name":"Tortilla","description":"","calories":450,"protein":25,"fat":20,"carbs":30},
		"snacks":"ninguno"
	}}`

	content, err := NormalizePlanResponse(raw)
	require.NoError(t, err)
	assert.Empty(t, content.Meals.Snacks)
}

func TestNormalizeKeepsSnacksAndGroceries(t *testing.T) {
	raw := `{"title":"X","dailyCalories":2200,"meals":{
		"breakfast":{"name":"Tostadas","description":"","calories":400,"protein":15,"fat":10,"carbs":55},
		"lunch":{"name":"Lentejas","description":"","calories":650,"protein":30,"fat":12,"carbs":80},
		"dinner":{"name":"Tortilla","description":"","calories":450,"protein":25,"fat":20,"carbs":30},
		"snacks":[{"name":"Fruta","description":"Una manzana","calories":90,"protein":0,"fat":0,"carbs":22}]
	},
	"groceryList":["Pan","Tomate"]}`

	content, err := NormalizePlanResponse(raw)
	require.NoError(t, err)
	require.Len(t, content.Meals.Snacks, 1)
	assert.Equal(t, "Fruta", content.Meals.Snacks[0].Name)
	assert.Equal(t, []string{"Pan", "Tomate"}, content.GroceryList)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
	assert.Equal(t, "", StripFences(" \n```json\n``` "))
}
