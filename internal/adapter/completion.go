package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// DefaultCompletionModel is used when no model is configured.
const DefaultCompletionModel = "gemini-2.5-flash"

// ErrEmptyCompletion is returned when the service answers without any text.
var ErrEmptyCompletion = errors.New("completion response was empty")

// CompletionAdapter sends a single prompt to a text generation service and
// returns the reply text. Implementations must be safe for concurrent use.
type CompletionAdapter interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiCompletionAdapter is a thin wrapper around the official genai client.
// It asks for a JSON reply at a low temperature; retries and timeouts are left
// to the caller's context.
type GeminiCompletionAdapter struct {
	cli   *genai.Client
	model string
}

// NewGeminiCompletionAdapter builds a client for the Gemini API.
func NewGeminiCompletionAdapter(ctx context.Context, apiKey, model string) (*GeminiCompletionAdapter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	if model == "" {
		model = DefaultCompletionModel
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiCompletionAdapter{cli: cli, model: model}, nil
}

// Name identifies the adapter in logs.
func (g *GeminiCompletionAdapter) Name() string { return "gemini:" + g.model }

// Complete sends prompt as a single user turn and returns the concatenated
// text parts of the first candidate.
func (g *GeminiCompletionAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0.2)

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature:      &temperature,
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyCompletion
	}

	return sb.String(), nil
}
