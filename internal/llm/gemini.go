package llm

import (
	"context"
	"fmt"
	"time"

	"alcyxob/coach-diet/internal/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient talks to the Google Gemini API. It implements both
// TextGenerator and VisionAnalyzer with the same underlying model.
type GeminiClient struct {
	apiKey  string
	timeout time.Duration
	client  *genai.Client
	model   *genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini API client. When the API key is empty
// no upstream client is created at all; every call then fails fast with
// ErrMissingAPIKey so callers can degrade without a network round-trip.
func NewGeminiClient(ctx context.Context, cfg config.AIConfig) (*GeminiClient, error) {
	g := &GeminiClient{apiKey: cfg.APIKey, timeout: cfg.Timeout}
	if g.timeout <= 0 {
		g.timeout = 60 * time.Second
	}
	if cfg.APIKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	g.model = client.GenerativeModel(cfg.Model)
	return g, nil
}

// GenerateText sends a prompt to the Gemini model and returns the generated
// text. Exactly one request is issued; there are no retries.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(resp)
}

// AnalyzeImage sends a prompt together with inline image data.
func (g *GeminiClient) AnalyzeImage(ctx context.Context, prompt string, format string, image []byte) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData(format, image))
	if err != nil {
		return "", fmt.Errorf("failed to analyze image: %w", err)
	}
	return extractText(resp)
}

// Close closes the underlying Gemini client, if one was created.
func (g *GeminiClient) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}
	return string(text), nil
}
