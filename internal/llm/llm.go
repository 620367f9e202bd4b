package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned by the gateway when no credential is
// configured. The call is refused before any network round-trip happens.
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// TextGenerator produces free text from a prompt. Implementations make
// exactly one upstream request per call; retry policy, if any, belongs to
// the caller.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// VisionAnalyzer produces free text describing an image. The format is the
// image subtype without the "image/" prefix, e.g. "jpeg" or "png".
type VisionAnalyzer interface {
	AnalyzeImage(ctx context.Context, prompt string, format string, image []byte) (string, error)
}
