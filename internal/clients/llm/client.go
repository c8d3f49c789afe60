// Package llm generates message text through OpenAI-compatible chat completion APIs.
package llm

import (
	"campaign-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	KindOpenAI = "openai"
	KindGroq   = "groq"

	OpenAIBaseURL = "https://api.openai.com/v1/"
	GroqBaseURL   = "https://api.groq.com/openai/v1/"

	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGroqModel   = "llama-3.1-8b-instant"
)

var (
	ErrMissingAPIKey  = errors.New("missing api key")
	ErrUnknownBackend = errors.New("unknown llm backend")
	ErrEmptyResponse  = errors.New("empty completion")
)

// CompletionRequest is one prompt sent to a backend
type CompletionRequest struct {
	Kind         string
	APIKey       string
	Model        string
	SystemPrompt string
	Prompt       string
	Temperature  *float64
	MaxTokens    int
}

// Client issues chat completions against OpenAI or Groq
type Client struct {
	baseURLs map[string]string
	timeout  time.Duration
	logger   *observability.Logger
}

// NewClient creates a client with the public OpenAI and Groq endpoints
func NewClient(timeout time.Duration, logger *observability.Logger) *Client {
	return &Client{
		baseURLs: map[string]string{
			KindOpenAI: OpenAIBaseURL,
			KindGroq:   GroqBaseURL,
		},
		timeout: timeout,
		logger:  logger,
	}
}

// WithBaseURL overrides the endpoint of one backend
func (c *Client) WithBaseURL(kind, baseURL string) *Client {
	c.baseURLs[kind] = baseURL
	return c
}

func defaultModel(kind string) string {
	if kind == KindGroq {
		return DefaultGroqModel
	}
	return DefaultOpenAIModel
}

// Complete returns the generated text for req
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	baseURL, ok := c.baseURLs[req.Kind]
	if !ok {
		return "", fmt.Errorf("%q: %w", req.Kind, ErrUnknownBackend)
	}
	if req.APIKey == "" {
		return "", fmt.Errorf("%s: %w", req.Kind, ErrMissingAPIKey)
	}

	model := req.Model
	if model == "" {
		model = defaultModel(req.Kind)
	}

	client := openai.NewClient(
		option.WithAPIKey(req.APIKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(c.timeout),
		option.WithMaxRetries(1),
	)

	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(model),
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "llm_backend", Value: req.Kind},
		observability.Field{Key: "llm_model", Value: model},
	)

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "chat completion failed", err)
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
