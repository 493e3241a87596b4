package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for chat completion providers
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

// CompletionRequest holds the prompt for a single completion call
type CompletionRequest struct {
	Prompt string `json:"prompt"`
}

// CompletionResponse is the provider's answer for a single prompt.
// Model is the concrete model that produced the answer. When the request
// names a routing pseudo-model, the backend picks the model and reports
// it here.
type CompletionResponse struct {
	Model  string `json:"model"`
	Answer string `json:"answer"`
	Usage  Usage  `json:"usage,omitempty"`
}

// Usage reports token consumption for a single completion call
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
