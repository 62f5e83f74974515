package domain

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/yuin/gopher-lua/ast"
	"go.uber.org/zap"

	"github.com/mouse-blink/luarename/internal/domain/suggesters"
	m "github.com/mouse-blink/luarename/internal/model"
)

// MaxCandidates bounds how many names a single plan may rename.
const MaxCandidates = 60

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	nonIdentifierChar = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// Planner turns a parsed chunk into a collision free rename plan.
type Planner interface {
	BuildPlan(ctx context.Context, source string, chunk []ast.Stmt) m.RenamePlan
}

// PlannerOption configures a Planner.
type PlannerOption func(*planner)

// WithSuggestTimeout bounds every call to the suggestion source.
func WithSuggestTimeout(timeout time.Duration) PlannerOption {
	return func(p *planner) {
		p.timeout = timeout
	}
}

type planner struct {
	suggester Suggester
	fallback  Suggester
	logger    *zap.Logger
	timeout   time.Duration
}

// NewPlanner builds a Planner that asks suggester for names and falls back to
// the heuristic source when it fails. A nil suggester means heuristic only.
func NewPlanner(suggester Suggester, logger *zap.Logger, opts ...PlannerOption) Planner {
	if logger == nil {
		logger = zap.NewNop()
	}

	heuristic := suggesters.NewHeuristic()
	if suggester == nil {
		suggester = heuristic
	}

	p := &planner{
		suggester: suggester,
		fallback:  heuristic,
		logger:    logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *planner) BuildPlan(ctx context.Context, source string, chunk []ast.Stmt) m.RenamePlan {
	ignore := buildIgnoreRule(source)
	if ignore.all {
		return m.RenamePlan{}
	}

	declared := Scan(chunk)

	candidates := selectCandidates(declared, ignore)
	if len(candidates) == 0 {
		return m.RenamePlan{}
	}

	suggestions := p.suggest(ctx, source, candidates)
	taken := takenNames(declared, chunk, ignore)

	kinds := make(map[string]m.IdentifierKind, len(candidates))
	for _, c := range candidates {
		if _, ok := kinds[c.Name]; !ok {
			kinds[c.Name] = c.Kind
		}
	}

	var plan m.RenamePlan

	for _, s := range suggestions {
		kind, ok := kinds[s.From]
		if !ok {
			p.logger.Debug("dropping suggestion for unknown name", zap.String("from", s.From))

			continue
		}

		to := nonIdentifierChar.ReplaceAllString(s.To, "")
		if !identifierPattern.MatchString(to) || to == s.From {
			p.logger.Debug("dropping invalid suggestion", zap.String("from", s.From), zap.String("to", s.To))

			continue
		}

		to = nextFreeName(to, taken)
		taken[to] = struct{}{}

		plan.Renames = append(plan.Renames, m.RenameEntry{From: s.From, To: to, Kind: kind})
	}

	return plan
}

func (p *planner) suggest(ctx context.Context, source string, candidates []m.IdentifierMeta) []m.Suggestion {
	suggestCtx := ctx

	if p.timeout > 0 {
		var cancel context.CancelFunc

		suggestCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	suggestions, err := p.suggester.Suggest(suggestCtx, source, candidates)
	if err == nil {
		return suggestions
	}

	p.logger.Warn("suggestion source failed, falling back to heuristic",
		zap.String("source", p.suggester.Name()),
		zap.Error(err),
	)

	suggestions, err = p.fallback.Suggest(ctx, source, candidates)
	if err != nil {
		p.logger.Error("heuristic suggestion failed", zap.Error(err))

		return nil
	}

	return suggestions
}

// selectCandidates keeps short names (two characters or fewer, which covers
// every single lowercase letter) that no directive protects.
func selectCandidates(declared []m.IdentifierMeta, ignore ignoreRule) []m.IdentifierMeta {
	var candidates []m.IdentifierMeta

	for _, id := range declared {
		if len(id.Name) > 2 || ignore.ignores(id.Name) {
			continue
		}

		candidates = append(candidates, id)
		if len(candidates) == MaxCandidates {
			break
		}
	}

	return candidates
}

func takenNames(declared []m.IdentifierMeta, chunk []ast.Stmt, ignore ignoreRule) map[string]struct{} {
	taken := make(map[string]struct{}, len(declared)+len(luaKeywords)+len(luaBuiltins))

	for _, id := range declared {
		taken[id.Name] = struct{}{}
	}

	for name := range luaKeywords {
		taken[name] = struct{}{}
	}

	for name := range luaBuiltins {
		taken[name] = struct{}{}
	}

	for name := range References(chunk) {
		taken[name] = struct{}{}
	}

	for name := range ignore.names {
		taken[name] = struct{}{}
	}

	return taken
}

func nextFreeName(name string, taken map[string]struct{}) string {
	if _, ok := taken[name]; !ok {
		return name
	}

	for n := 2; ; n++ {
		candidate := name + strconv.Itoa(n)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// ValidatePlan checks a plan that did not come from BuildPlan, such as a hand
// edited plan file. When chunk is not nil, every source must be a name the file
// declares and no target may be a name the file already uses, including names
// the plan renames away.
func ValidatePlan(plan m.RenamePlan, chunk []ast.Stmt) error {
	targets := make(map[string]string, len(plan.Renames))

	declared := make(map[string]struct{})
	for _, id := range Scan(chunk) {
		declared[id.Name] = struct{}{}
	}

	used := References(chunk)
	for name := range declared {
		used[name] = struct{}{}
	}

	for i, entry := range plan.Renames {
		if entry.From == "" {
			return fmt.Errorf("rename %d: empty source name", i+1)
		}

		if !identifierPattern.MatchString(entry.From) {
			return fmt.Errorf("rename %d: source %q is not a plain identifier", i+1, entry.From)
		}

		if IsReserved(entry.From) {
			return fmt.Errorf("rename %d: source %q is a reserved name", i+1, entry.From)
		}

		if _, ok := declared[entry.From]; chunk != nil && !ok {
			return fmt.Errorf("rename %d: %q is not declared in the file", i+1, entry.From)
		}

		if !identifierPattern.MatchString(entry.To) {
			return fmt.Errorf("rename %d: %q is not a valid identifier", i+1, entry.To)
		}

		if IsReserved(entry.To) {
			return fmt.Errorf("rename %d: %q is a reserved name", i+1, entry.To)
		}

		if entry.From == entry.To {
			return fmt.Errorf("rename %d: %q renames to itself", i+1, entry.From)
		}

		if prev, ok := targets[entry.To]; ok && prev != entry.From {
			return fmt.Errorf("rename %d: %q is already the target of %q", i+1, entry.To, prev)
		}

		if _, ok := used[entry.To]; ok {
			return fmt.Errorf("rename %d: %q is already used in the file", i+1, entry.To)
		}

		targets[entry.To] = entry.From
	}

	return nil
}
