package openrouter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Panandika/model-routing-benchmark/internal/inference"
	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// DefaultBaseURL is the OpenRouter API endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// RoutingModel is the pseudo-model that delegates model selection to
// OpenRouter. The response reports which concrete model answered.
const RoutingModel = "openrouter/auto"

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(baseURL, apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(60 * time.Second)

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	return false
}

// Complete implements the inference.Client interface
func (client *Client) Complete(
	ctx context.Context,
	req inference.CompletionRequest,
) (inference.CompletionResponse, error) {
	var result inference.CompletionResponse
	if err := retry.Do(
		func() error {
			response, err := client.complete(ctx, req)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Warn("Retrying OpenRouter API call",
				"attempt", n+1,
				"error", err)
		}),
	); err != nil {
		return inference.CompletionResponse{}, err
	}
	return result, nil
}

func (client *Client) complete(
	ctx context.Context,
	req inference.CompletionRequest,
) (inference.CompletionResponse, error) {
	requestBody := ChatCompletionRequest{
		Model: client.model,
		Messages: []Message{
			{Role: RoleUser, Content: req.Prompt},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.CompletionResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.CompletionResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.CompletionResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return inference.CompletionResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}

	slog.Default().Debug("openrouter response",
		"model", responseBody.Model,
		"usage", responseBody.Usage,
	)

	return inference.CompletionResponse{
		Model:  responseBody.Model,
		Answer: content,
		Usage: inference.Usage{
			PromptTokens:     responseBody.Usage.PromptTokens,
			CompletionTokens: responseBody.Usage.CompletionTokens,
			TotalTokens:      responseBody.Usage.TotalTokens,
		},
	}, nil
}
