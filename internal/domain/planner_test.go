package domain_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mouse-blink/luarename/internal/domain"
	domainmocks "github.com/mouse-blink/luarename/internal/domain/mocks"
	"github.com/mouse-blink/luarename/internal/domain/suggesters"
	m "github.com/mouse-blink/luarename/internal/model"
)

func TestBuildPlan_HeuristicBasicExample(t *testing.T) {
	src := readExample(t, "basic", "main.lua")

	got := domain.NewPlanner(nil, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

	assert.Equal(t, []m.RenameEntry{
		{From: "t", To: "localValue", Kind: m.KindLocal},
		{From: "f", To: "localValue2", Kind: m.KindLocal},
		{From: "a", To: "param", Kind: m.KindParam},
		{From: "b", To: "param2", Kind: m.KindParam},
		{From: "g", To: "globalValue", Kind: m.KindGlobal},
		{From: "x", To: "param3", Kind: m.KindParam},
		{From: "s", To: "localValue3", Kind: m.KindLocal},
		{From: "i", To: "localValue4", Kind: m.KindLocal},
	}, got.Renames)
}

func TestBuildPlan_NoCandidatesSkipsSuggester(t *testing.T) {
	suggester := domainmocks.NewMockSuggester(t)
	src := "local count = 1\nlocal function total(value) return value end\n"

	got := domain.NewPlanner(suggester, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

	assert.True(t, got.IsEmpty())
	suggester.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildPlan_TruncatesCandidates(t *testing.T) {
	var sb strings.Builder
	for i := range 70 {
		fmt.Fprintf(&sb, "local %c%c = %d\n", 'a'+i/26, 'a'+i%26, i)
	}

	src := sb.String()
	suggester := domainmocks.NewMockSuggester(t)
	suggester.EXPECT().
		Suggest(mock.Anything, src, mock.Anything).
		Run(func(_ context.Context, _ string, candidates []m.IdentifierMeta) {
			require.Len(t, candidates, domain.MaxCandidates)
			assert.Equal(t, "aa", candidates[0].Name)
			assert.Equal(t, "ch", candidates[domain.MaxCandidates-1].Name)
		}).
		Return(nil, nil)

	got := domain.NewPlanner(suggester, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

	assert.True(t, got.IsEmpty())
}

func TestBuildPlan_ValidatesSuggestions(t *testing.T) {
	src := "local a, b, c, d, e = 1, 2, 3, 4, 5\nlocal value, value2 = 0, 0\n"

	suggester := domainmocks.NewMockSuggester(t)
	suggester.EXPECT().
		Suggest(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Suggestion{
			{From: "zz", To: "unknown"},
			{From: "a", To: "my-name!"},
			{From: "b", To: "1abc"},
			{From: "c", To: "c"},
			{From: "d", To: "value"},
			{From: "e", To: "end"},
		}, nil)

	got := domain.NewPlanner(suggester, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

	assert.Equal(t, []m.RenameEntry{
		{From: "a", To: "myname", Kind: m.KindLocal},
		{From: "d", To: "value3", Kind: m.KindLocal},
		{From: "e", To: "end2", Kind: m.KindLocal},
	}, got.Renames)
}

func TestBuildPlan_TargetsAreInjective(t *testing.T) {
	src := "local a, b, c = 1, 2, 3\n"

	suggester := domainmocks.NewMockSuggester(t)
	suggester.EXPECT().
		Suggest(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Suggestion{
			{From: "a", To: "item"},
			{From: "b", To: "item"},
			{From: "c", To: "item"},
		}, nil)

	got := domain.NewPlanner(suggester, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

	require.Len(t, got.Renames, 3)
	assert.Equal(t, "item", got.Renames[0].To)
	assert.Equal(t, "item2", got.Renames[1].To)
	assert.Equal(t, "item3", got.Renames[2].To)
}

func TestBuildPlan_AvoidsReferencedNames(t *testing.T) {
	src := "local a = helper(1)\n"

	suggester := domainmocks.NewMockSuggester(t)
	suggester.EXPECT().
		Suggest(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Suggestion{{From: "a", To: "helper"}}, nil)

	got := domain.NewPlanner(suggester, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

	assert.Equal(t, []m.RenameEntry{{From: "a", To: "helper2", Kind: m.KindLocal}}, got.Renames)
}

func TestBuildPlan_KindComesFromFirstCandidate(t *testing.T) {
	src := "function x(x) return x end\n"

	suggester := domainmocks.NewMockSuggester(t)
	suggester.EXPECT().
		Suggest(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Suggestion{{From: "x", To: "handler"}}, nil)

	got := domain.NewPlanner(suggester, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

	assert.Equal(t, []m.RenameEntry{{From: "x", To: "handler", Kind: m.KindGlobal}}, got.Renames)
}

func TestBuildPlan_FallsBackToHeuristic(t *testing.T) {
	src := readExample(t, "loops", "main.lua")
	chunk := parseLua(t, src)

	core, logs := observer.New(zapcore.WarnLevel)

	failing := domainmocks.NewMockSuggester(t)
	failing.EXPECT().Name().Return("ai:test")
	failing.EXPECT().
		Suggest(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("service unavailable"))

	got := domain.NewPlanner(failing, zap.New(core)).BuildPlan(context.Background(), src, chunk)
	want := domain.NewPlanner(suggesters.NewHeuristic(), zap.NewNop()).BuildPlan(context.Background(), src, chunk)

	assert.Equal(t, want, got)
	assert.Equal(t, []m.RenameEntry{
		{From: "k", To: "localValue", Kind: m.KindLocal},
		{From: "v", To: "localValue2", Kind: m.KindLocal},
		{From: "n", To: "localValue3", Kind: m.KindLocal},
	}, got.Renames)

	entries := logs.FilterMessage("suggestion source failed, falling back to heuristic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ai:test", entries[0].ContextMap()["source"])
	assert.Equal(t, "service unavailable", entries[0].ContextMap()["error"])
}

func TestBuildPlan_SuggestTimeout(t *testing.T) {
	src := "local a = 1\n"

	slow := domainmocks.NewMockSuggester(t)
	slow.EXPECT().Name().Return("slow")
	slow.EXPECT().
		Suggest(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ []m.IdentifierMeta) ([]m.Suggestion, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)

			<-ctx.Done()

			return nil, ctx.Err()
		})

	p := domain.NewPlanner(slow, zap.NewNop(), domain.WithSuggestTimeout(10*time.Millisecond))
	got := p.BuildPlan(context.Background(), src, parseLua(t, src))

	assert.Equal(t, []m.RenameEntry{{From: "a", To: "localValue", Kind: m.KindLocal}}, got.Renames)
}

func TestBuildPlan_IgnoreDirectives(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		src := readExample(t, "ignore", "main.lua")

		got := domain.NewPlanner(nil, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

		assert.Equal(t, []m.RenameEntry{{From: "c", To: "localValue", Kind: m.KindLocal}}, got.Renames)
	})

	t.Run("whole file", func(t *testing.T) {
		src := "--luarename:ignore\nlocal a = 1\n"
		suggester := domainmocks.NewMockSuggester(t)

		got := domain.NewPlanner(suggester, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

		assert.True(t, got.IsEmpty())
	})

	t.Run("ignored names stay taken", func(t *testing.T) {
		src := "-- luarename:ignore i\nlocal i, j = 1, 2\n"

		suggester := domainmocks.NewMockSuggester(t)
		suggester.EXPECT().
			Suggest(mock.Anything, mock.Anything, []m.IdentifierMeta{{Name: "j", Kind: m.KindLocal}}).
			Return([]m.Suggestion{{From: "j", To: "i"}}, nil)

		got := domain.NewPlanner(suggester, zap.NewNop()).BuildPlan(context.Background(), src, parseLua(t, src))

		assert.Equal(t, []m.RenameEntry{{From: "j", To: "i2", Kind: m.KindLocal}}, got.Renames)
	})
}

func TestBuildPlan_Deterministic(t *testing.T) {
	src := readExample(t, "basic", "main.lua")
	chunk := parseLua(t, src)
	p := domain.NewPlanner(nil, zap.NewNop())

	first := p.BuildPlan(context.Background(), src, chunk)
	for range 5 {
		assert.Equal(t, first, p.BuildPlan(context.Background(), src, chunk))
	}
}

func TestBuildPlan_TargetsAreValidAndFresh(t *testing.T) {
	src := readExample(t, "basic", "main.lua")
	chunk := parseLua(t, src)

	got := domain.NewPlanner(nil, zap.NewNop()).BuildPlan(context.Background(), src, chunk)

	declared := map[string]struct{}{}
	for _, id := range domain.Scan(chunk) {
		declared[id.Name] = struct{}{}
	}

	seen := map[string]struct{}{}

	for _, entry := range got.Renames {
		assert.Regexp(t, `^[A-Za-z_][A-Za-z0-9_]*$`, entry.To)
		assert.NotEqual(t, entry.From, entry.To)
		assert.NotContains(t, declared, entry.To)
		assert.NotContains(t, seen, entry.To)
		seen[entry.To] = struct{}{}
	}
}

func TestValidatePlan(t *testing.T) {
	chunk := parseLua(t, "local a, b = 1, helper\n")

	tests := []struct {
		name    string
		plan    m.RenamePlan
		wantErr string
	}{
		{name: "valid", plan: renames("a", "first", "b", "second")},
		{name: "swap within plan", plan: renames("a", "b", "b", "a"), wantErr: "already used in the file"},
		{name: "empty from", plan: renames("", "x"), wantErr: "empty source name"},
		{name: "bad identifier", plan: renames("a", "1st"), wantErr: "not a valid identifier"},
		{name: "reserved", plan: renames("a", "local"), wantErr: "reserved name"},
		{name: "no-op", plan: renames("a", "a"), wantErr: "renames to itself"},
		{name: "duplicate target", plan: renames("a", "x", "b", "x"), wantErr: "already the target"},
		{name: "target used in file", plan: renames("a", "helper"), wantErr: "already used in the file"},
		{name: "keyword source", plan: renames("end", "finish"), wantErr: "source \"end\" is a reserved name"},
		{name: "member access source", plan: renames("t.x", "field"), wantErr: "not a plain identifier"},
		{name: "builtin source", plan: renames("print", "show"), wantErr: "reserved name"},
		{name: "undeclared source", plan: renames("helper", "assistant"), wantErr: "not declared in the file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidatePlan(tt.plan, chunk)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
