package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genai"

	"interviewpro/api/internal/llm"
	"interviewpro/api/internal/models"
)

// Client represents a Gemini LLM client

type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// GenerateContent runs a single-shot prompt.
func (c *Client) GenerateContent(ctx context.Context, prompt string, requestID string) (*models.GenerationResponse, error) {
	return c.generate(ctx, genai.Text(prompt), requestID)
}

// GenerateChat forwards an ordered conversation history. Turn order is
// preserved exactly; candidate turns map to the "user" role and interviewer
// turns to "model".
func (c *Client) GenerateChat(ctx context.Context, history []models.ChatMessage, requestID string) (*models.GenerationResponse, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  toGeminiRole(msg.Role),
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	return c.generate(ctx, contents, requestID)
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content, requestID string) (*models.GenerationResponse, error) {
	startTime := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(callCtx, c.config.Model, contents, nil)
	if err != nil && ctx.Err() == nil && isRetryableError(err) {
		// one bounded retry for transient failures; never when the caller's
		// context is already done
		retryCtx, retryCancel := context.WithTimeout(ctx, c.config.Timeout)
		result, err = c.client.Models.GenerateContent(retryCtx, c.config.Model, contents, nil)
		retryCancel()
	}
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     classifyError(err),
			Message:  "Failed to generate content",
			Err:      err,
		}
	}

	if result == nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}

	processingTime := time.Since(startTime).Milliseconds()

	return &models.GenerationResponse{
		Content:   text,
		RequestID: requestID,
		Metadata: models.GenerationMetadata{
			ProcessingTime: int(processingTime),
			Provider:       "gemini",
			Model:          c.config.Model,
		},
	}, nil
}

// isRetryableError reports whether a failed provider call is worth one more
// attempt. Deterministic client errors (bad key, malformed request, unknown
// resource) fail the same way on every call, so those are excluded; network
// failures, rate limits and 5xx responses pass.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"api key", "unauthenticated", "permission_denied", "invalid_argument", "400", "401", "403", "404"} {
		if strings.Contains(msg, marker) {
			return false
		}
	}
	return true
}

// classifyError maps a raw provider failure to a ProviderError code.
func classifyError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return llm.ErrCodeTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "resource_exhausted"), strings.Contains(msg, "quota"):
		return llm.ErrCodeRateLimit
	case strings.Contains(msg, "api key"), strings.Contains(msg, "401"), strings.Contains(msg, "403"), strings.Contains(msg, "unauthenticated"), strings.Contains(msg, "permission_denied"):
		return llm.ErrCodeAPIKey
	default:
		return llm.ErrCodeServiceDown
	}
}

func toGeminiRole(role string) string {
	if role == models.RoleCandidate {
		return "user"
	}
	return "model"
}

func (c *Client) GetProviderName() string {
	return "gemini"
}
