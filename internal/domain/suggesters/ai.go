package suggesters

import (
	"context"
	"fmt"

	"github.com/mouse-blink/luarename/internal/adapter"
	m "github.com/mouse-blink/luarename/internal/model"
)

// AI asks a text completion service for names.
type AI struct {
	completion adapter.CompletionAdapter
}

// NewAI builds an AI suggestion source on top of a completion adapter.
func NewAI(completion adapter.CompletionAdapter) *AI {
	return &AI{completion: completion}
}

// Name identifies the source by the completion backend it uses.
func (a *AI) Name() string { return "ai:" + a.completion.Name() }

// Suggest sends one prompt and parses the reply. Transport and parse errors
// are returned unchanged in kind so callers can tell them apart.
func (a *AI) Suggest(ctx context.Context, source string, candidates []m.IdentifierMeta) ([]m.Suggestion, error) {
	reply, err := a.completion.Complete(ctx, BuildPrompt(source, candidates))
	if err != nil {
		return nil, fmt.Errorf("failed to request suggestions: %w", err)
	}

	suggestions, err := ParseResponse(reply)
	if err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}

	return suggestions, nil
}
