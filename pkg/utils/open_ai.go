package utils

import (
	"context"
	"errors"
	"net/http"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerationClient implements GenerationClientInterface using OpenAI
// chat completions. Alternative provider behind the same factory.
type OpenAIGenerationClient struct {
	apiKey string
	model  string
	policy RetryPolicy

	initOnce sync.Once
	client   *openai.Client
}

func NewOpenAIGenerationClient(apiKey, model string) *OpenAIGenerationClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerationClient{
		apiKey: apiKey,
		model:  model,
		policy: DefaultRetryPolicy(openAIRetryable),
	}
}

func (c *OpenAIGenerationClient) GenerateItineraryText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	c.initOnce.Do(func() {
		c.client = openai.NewClient(c.apiKey)
	})

	out, attempts, err := c.policy.Do(ctx, func(ctx context.Context) (string, error) {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Temperature: 0.7,
			MaxTokens:   8192,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errNoCandidates
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message, Attempts: attempts, Err: err}
		}
		return "", &UpstreamError{Attempts: attempts, Err: err}
	}
	return out, nil
}

func (c *OpenAIGenerationClient) Close() error {
	return nil
}

func openAIRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusServiceUnavailable
	}
	if errors.Is(err, errNoCandidates) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}
