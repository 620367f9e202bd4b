package diet

import (
	"strings"
	"testing"

	"alcyxob/coach-diet/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testClient() domain.Client {
	return domain.Client{
		Name:                "Ana",
		Age:                 28,
		Weight:              60,
		Height:              165,
		Gender:              domain.GenderFemale,
		Goal:                "Perder peso",
		DietaryRestrictions: "Ninguna",
		ActivityLevel:       "Moderado",
		MealsPerDay:         4,
	}
}

func TestBuildPromptIncludesProfileFields(t *testing.T) {
	prompt := BuildPrompt(testClient())

	assert.Contains(t, prompt, "Ana")
	assert.Contains(t, prompt, "28")
	assert.Contains(t, prompt, "60.0kg")
	assert.Contains(t, prompt, "165.0cm")
	assert.Contains(t, prompt, "female")
	assert.Contains(t, prompt, "Perder peso")
	assert.Contains(t, prompt, "Moderado")
	assert.Contains(t, prompt, "Comidas al día: 4")
}

func TestBuildPromptMandatesJSONShape(t *testing.T) {
	prompt := BuildPrompt(testClient())

	assert.Contains(t, prompt, "EXCLUSIVAMENTE en formato JSON")
	for _, key := range []string{`"title"`, `"dailyCalories"`, `"breakfast"`, `"lunch"`, `"dinner"`, `"snacks"`, `"groceryList"`} {
		assert.Contains(t, prompt, key)
	}
	// The snack instruction asks the model to cover mealsPerDay beyond the triad.
	assert.Contains(t, prompt, "más de 3 comidas")
}

func TestBuildPromptDefaultsEmptyFields(t *testing.T) {
	client := testClient()
	client.Goal = ""
	client.DietaryRestrictions = ""
	client.MealsPerDay = 0

	prompt := BuildPrompt(client)

	assert.Contains(t, prompt, "Objetivo: Ninguno")
	assert.Contains(t, prompt, "Restricciones: Ninguna")
	assert.Contains(t, prompt, "Comidas al día: 3")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	client := testClient()
	a := BuildPrompt(client)
	b := BuildPrompt(client)
	if !strings.Contains(a, "Ana") || a != b {
		t.Fatalf("prompt is not a pure function of its input")
	}
}
