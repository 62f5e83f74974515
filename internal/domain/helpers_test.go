package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/gopher-lua/ast"

	"github.com/mouse-blink/luarename/internal/adapter"
)

func parseLua(t *testing.T, src string) []ast.Stmt {
	t.Helper()

	chunk, err := adapter.NewLocalLuaFileAdapter().Parse("test.lua", []byte(src))
	require.NoError(t, err)

	return chunk
}

func examplePath(elem ...string) string {
	return filepath.Join(append([]string{"..", "..", "examples"}, elem...)...)
}

func readExample(t *testing.T, elem ...string) string {
	t.Helper()

	content, err := os.ReadFile(examplePath(elem...))
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
