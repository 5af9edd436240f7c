package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var errNoCandidates = errors.New("no content candidates in model response")

// GeminiGenerationClient implements GenerationClientInterface using Google's
// Gemini models. The underlying client is created on first use so a missing
// credential fails before any network activity.
type GeminiGenerationClient struct {
	apiKey string
	model  string
	policy RetryPolicy

	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

func NewGeminiGenerationClient(apiKey, model string) *GeminiGenerationClient {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiGenerationClient{
		apiKey: apiKey,
		model:  model,
		policy: DefaultRetryPolicy(geminiRetryable),
	}
}

// WithRetryPolicy overrides the default retry policy.
func (c *GeminiGenerationClient) WithRetryPolicy(policy RetryPolicy) *GeminiGenerationClient {
	c.policy = policy
	return c
}

func (c *GeminiGenerationClient) GenerateItineraryText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	c.initOnce.Do(func() {
		c.client, c.initErr = genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	})
	if c.initErr != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", c.initErr)
	}

	model := c.client.GenerativeModel(c.model)
	// Tuning mirrors the itinerary generation endpoint contract.
	model.SetTemperature(0.7)
	model.SetTopK(40)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(8192)

	out, attempts, err := c.policy.Do(ctx, func(ctx context.Context) (string, error) {
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", errNoCandidates
		}
		var text strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text.WriteString(string(txt))
			}
		}
		if text.Len() == 0 {
			return "", errNoCandidates
		}
		return text.String(), nil
	})
	if err != nil {
		return "", upstreamError(err, attempts)
	}
	return out, nil
}

func (c *GeminiGenerationClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// geminiRetryable treats a transient-overload status and transport-level
// failures as retryable; any other upstream status is immediately fatal.
func geminiRetryable(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusServiceUnavailable
	}
	if errors.Is(err, errNoCandidates) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

func upstreamError(err error, attempts int) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &UpstreamError{StatusCode: gerr.Code, Body: gerr.Message, Attempts: attempts, Err: err}
	}
	return &UpstreamError{Attempts: attempts, Err: err}
}
