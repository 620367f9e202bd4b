package diet

import (
	"fmt"

	"alcyxob/coach-diet/internal/domain"
)

// BuildPrompt turns a client profile into the instruction string sent to the
// model. The prompt pins the output to a strict JSON object so the normalizer
// has a fighting chance of parsing whatever comes back. Pure function, no
// side effects.
func BuildPrompt(client domain.Client) string {
	goal := client.Goal
	if goal == "" {
		goal = "Ninguno"
	}
	restrictions := client.DietaryRestrictions
	if restrictions == "" {
		restrictions = "Ninguna"
	}
	activity := client.ActivityLevel
	if activity == "" {
		activity = "Moderado"
	}

	return fmt.Sprintf(`Actúa como un nutricionista experto y entrenador personal.
Crea un plan de dieta de 1 día detallado para el siguiente cliente:

Perfil:
- Nombre: %s
- Edad: %d
- Peso: %.1fkg
- Altura: %.1fcm
- Género: %s
- Objetivo: %s
- Nivel de Actividad: %s
- Restricciones: %s
- Comidas al día: %d

Genera una respuesta EXCLUSIVAMENTE en formato JSON válido, sin texto adicional ni bloques de markdown.
IMPORTANTE: Si el cliente pide más de 3 comidas, añade los "snacks" necesarios en el array "snacks".
Estructura JSON:
{
  "title": "Nombre creativo para el plan",
  "dailyCalories": número estimado de calorías,
  "meals": {
    "breakfast": { "name": "Nombre del plato", "description": "Descripción breve", "calories": 0, "protein": 0, "fat": 0, "carbs": 0 },
    "lunch": { "name": "...", "description": "...", "calories": 0, "protein": 0, "fat": 0, "carbs": 0 },
    "dinner": { "name": "...", "description": "...", "calories": 0, "protein": 0, "fat": 0, "carbs": 0 },
    "snacks": [ { "name": "Snack 1", "description": "...", "calories": 0, "protein": 0, "fat": 0, "carbs": 0 } ]
  },
  "groceryList": ["Ingrediente 1", "Ingrediente 2"]
}`,
		client.Name,
		client.Age,
		client.Weight,
		client.Height,
		client.Gender,
		goal,
		activity,
		restrictions,
		client.EffectiveMealsPerDay(),
	)
}
