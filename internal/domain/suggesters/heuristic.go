// Package suggesters holds the suggestion sources the planner can ask for new
// identifier names.
package suggesters

import (
	"context"
	"strconv"

	m "github.com/mouse-blink/luarename/internal/model"
)

// HeuristicName identifies the heuristic source in logs.
const HeuristicName = "heuristic"

// Heuristic derives names from the identifier kind alone. It performs no I/O
// and always answers.
type Heuristic struct{}

// NewHeuristic returns the heuristic suggestion source.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Name returns HeuristicName.
func (h *Heuristic) Name() string { return HeuristicName }

// Suggest proposes one name per candidate, in candidate order. Each base name
// is used bare the first time and numbered from 2 afterwards.
func (h *Heuristic) Suggest(_ context.Context, _ string, candidates []m.IdentifierMeta) ([]m.Suggestion, error) {
	counters := make(map[string]int)
	out := make([]m.Suggestion, 0, len(candidates))

	for _, c := range candidates {
		base := baseName(c.Kind)
		counters[base]++

		to := base
		if n := counters[base]; n > 1 {
			to = base + strconv.Itoa(n)
		}

		out = append(out, m.Suggestion{From: c.Name, To: to})
	}

	return out, nil
}

func baseName(kind m.IdentifierKind) string {
	switch kind {
	case m.KindParam:
		return "param"
	case m.KindFunction:
		return "doWork"
	case m.KindGlobal:
		return "globalValue"
	default:
		return "localValue"
	}
}
