package domain

import (
	"context"

	m "github.com/mouse-blink/luarename/internal/model"
)

// Suggester proposes replacement names for rename candidates. Implementations
// return raw proposals; the planner validates them.
type Suggester interface {
	Name() string
	Suggest(ctx context.Context, source string, candidates []m.IdentifierMeta) ([]m.Suggestion, error)
}
