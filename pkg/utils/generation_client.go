package utils

import (
	"context"
	"fmt"
	"strings"
)

// GenerationClientInterface is the outbound boundary to the generative
// model. Implementations own retry/backoff and surface typed errors:
// ErrAPIKeyMissing before any network call, *UpstreamError afterward.
type GenerationClientInterface interface {
	GenerateItineraryText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewGenerationClient builds a provider-specific client based on config.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini", "":
		return NewGeminiGenerationClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
