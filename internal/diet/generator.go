package diet

import (
	"context"
	"errors"
	"time"

	"alcyxob/coach-diet/internal/domain"
	"alcyxob/coach-diet/internal/llm"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the outcome of a successful generation: the assembled plan and
// where its content came from.
type Result struct {
	Plan   domain.DietPlan
	Origin domain.PlanOrigin
}

// Generator runs the diet generation pipeline: build the prompt, make a
// single model call, normalize the response and assemble the plan. Any
// configuration or transient failure along the way degrades to the static
// fallback plan; only invalid input surfaces as an error. The credential
// lives inside the injected gateway, so both branches are testable without
// touching process environment.
type Generator struct {
	textGen llm.TextGenerator
	logger  *zap.Logger
}

// NewGenerator creates a Generator. A nil logger falls back to a no-op one.
func NewGenerator(textGen llm.TextGenerator, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{textGen: textGen, logger: logger}
}

// Generate produces a one-day diet plan for the given client profile.
// The returned error is always a validation error; operational failures
// (missing credential, upstream errors, unparsable output) are absorbed into
// a fallback-origin result and logged for operators instead.
func (g *Generator) Generate(ctx context.Context, client *domain.Client) (*Result, error) {
	if err := validateProfile(client); err != nil {
		return nil, err
	}

	content, origin := g.generateContent(ctx, *client)
	return &Result{Plan: assemble(content), Origin: origin}, nil
}

func (g *Generator) generateContent(ctx context.Context, client domain.Client) (PlanContent, domain.PlanOrigin) {
	prompt := BuildPrompt(client)

	raw, err := g.textGen.GenerateText(ctx, prompt)
	if err != nil {
		perr := newTransientError("model call failed", err)
		if errors.Is(err, llm.ErrMissingAPIKey) {
			perr = newConfigurationError("model credential is missing", err)
		}
		g.logger.Warn("diet generation degraded to fallback plan",
			zap.String("client", client.Name),
			zap.String("kind", string(perr.Kind)),
			zap.Error(perr),
		)
		return FallbackPlan(), domain.OriginFallback
	}

	content, err := NormalizePlanResponse(raw)
	if err != nil {
		g.logger.Warn("model response rejected, degraded to fallback plan",
			zap.String("client", client.Name),
			zap.Error(err),
		)
		return FallbackPlan(), domain.OriginFallback
	}
	return content, domain.OriginGenerated
}

func validateProfile(client *domain.Client) error {
	if client == nil {
		return newValidationError("client profile is missing")
	}
	if client.Name == "" {
		return newValidationError("client name is required")
	}
	return nil
}

// assemble attaches a fresh identity and creation timestamp to plan content.
// The input is passed by value and never mutated; identifiers come from a
// cryptographically strong random source.
func assemble(content PlanContent) domain.DietPlan {
	return domain.DietPlan{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Title:         content.Title,
		DailyCalories: content.DailyCalories,
		Meals:         content.Meals,
		GroceryList:   content.GroceryList,
	}
}
