package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/gopher-lua/ast"
	"go.uber.org/zap"

	"github.com/mouse-blink/luarename/internal/adapter"
	"github.com/mouse-blink/luarename/internal/domain"
	m "github.com/mouse-blink/luarename/internal/model"
)

func parseLua(t *testing.T, src string) []ast.Stmt {
	t.Helper()

	chunk, err := adapter.NewLocalLuaFileAdapter().Parse("test.lua", []byte(src))
	require.NoError(t, err)

	return chunk
}

func readExample(t *testing.T, elem ...string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(append([]string{"..", "..", "examples"}, elem...)...))
	require.NoError(t, err)

	return string(content)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func renames(pairs ...string) m.RenamePlan {
	var p m.RenamePlan
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Renames = append(p.Renames, m.RenameEntry{From: pairs[i], To: pairs[i+1], Kind: m.KindLocal})
	}

	return p
}

func sourceAt(path string) m.Source {
	return m.Source{Origin: &m.File{Path: m.Path(path)}}
}

func newHeuristicRenamer() *domain.Renamer {
	return domain.NewRenamer(adapter.NewLocalLuaFileAdapter(), domain.NewPlanner(nil, zap.NewNop()))
}
