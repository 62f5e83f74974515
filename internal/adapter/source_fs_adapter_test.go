package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/luarename/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.lua"), "return 1\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.lua"), "return 2\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.lua")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "main.lua")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.lua"), "return 1\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.lua")
		writeTestFile(t, child, "return 2\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.lua")
	content := "local x = 1\n" + "return x\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_ReadFileLimit(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.lua")
	writeTestFile(t, path, "local x = 1\n")

	t.Run("within cap", func(t *testing.T) {
		got, err := adapter.ReadFileLimit(m.Path(path), 12)
		require.NoError(t, err)
		assert.Equal(t, "local x = 1\n", string(got))
	})

	t.Run("over cap", func(t *testing.T) {
		_, err := adapter.ReadFileLimit(m.Path(path), 5)
		require.ErrorIs(t, err, ErrFileTooLarge)
		assert.Contains(t, err.Error(), "max 5 bytes")
	})

	t.Run("cap disabled", func(t *testing.T) {
		got, err := adapter.ReadFileLimit(m.Path(path), 0)
		require.NoError(t, err)
		assert.Len(t, got, 12)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.ReadFileLimit(m.Path(filepath.Join(root, "missing.lua")), 10)
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.lua")
	content := []byte("local x = 1\nreturn x\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, expected, hash)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.lua")
	writeTestFile(t, path, "return 1\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)

	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")
}

func TestLocalSourceFSAdapter_WriteFileCreatesParents(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	target := adapter.JoinPath(root, "out", "deep", "main.lua")

	require.NoError(t, adapter.WriteFile(target, []byte("return 1\n"), 0o600))

	assert.Equal(t, "return 1\n", string(readFileBytes(t, string(target))))
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("dot selects current directory non-recursive", func(t *testing.T) {
		root := t.TempDir()
		mainPath := filepath.Join(root, "main.lua")
		copyExampleFile(t, filepath.Join(examplePath(t, "basic"), "main.lua"), mainPath)
		mainContent := readFileBytes(t, mainPath)

		refactoredPath := filepath.Join(root, "main_refactored.lua")
		copyExampleFile(t, filepath.Join(examplePath(t, "basic"), "main_refactored.lua"), refactoredPath)
		writeTestFile(t, filepath.Join(root, "notes.txt"), "not lua\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		nestedPath := filepath.Join(nestedDir, "child.lua")
		copyExampleFile(t, filepath.Join(examplePath(t, "nested", "sub"), "child.lua"), nestedPath)

		chdir(t, root)

		sources, err := adapter.Get([]m.Path{"."})
		require.NoError(t, err)

		require.Len(t, sources, 1)

		source := findSourceByOrigin(sources, mainPath)
		require.NotNilf(t, source, "Get() did not include %s", mainPath)
		assertSource(t, source, mainPath, mainContent)

		assert.Nil(t, findSourceByOrigin(sources, nestedPath), "Get() unexpectedly included nested file for '.'")
		assert.Nil(t, findSourceByOrigin(sources, refactoredPath), "Get() should skip earlier outputs")
	})

	t.Run("recursive suffix includes nested files", func(t *testing.T) {
		root := t.TempDir()
		mainPath := filepath.Join(root, "main.lua")
		copyExampleFile(t, filepath.Join(examplePath(t, "nested"), "main.lua"), mainPath)
		nestedPath := filepath.Join(root, "sub", "child.lua")
		copyExampleFile(t, filepath.Join(examplePath(t, "nested", "sub"), "child.lua"), nestedPath)

		sources, err := adapter.Get([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)

		require.Len(t, sources, 2)
		assert.NotNil(t, findSourceByOrigin(sources, mainPath))
		assert.NotNil(t, findSourceByOrigin(sources, nestedPath))
	})

	t.Run("upper case extension is accepted", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "SCRIPT.LUA")
		writeTestFile(t, path, "return 1\n")

		sources, err := adapter.Get([]m.Path{m.Path(root)})
		require.NoError(t, err)

		require.Len(t, sources, 1)
		assert.Equal(t, m.Path(path), sources[0].Origin.Path)
	})

	t.Run("explicit file path is taken as is", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "script.txt")
		writeTestFile(t, path, "return 1\n")

		sources, err := adapter.Get([]m.Path{m.Path(path)})
		require.NoError(t, err)

		require.Len(t, sources, 1)
		assertSource(t, &sources[0], path, []byte("return 1\n"))
	})

	t.Run("duplicate roots are deduplicated", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "main.lua")
		writeTestFile(t, path, "return 1\n")

		sources, err := adapter.Get([]m.Path{m.Path(root), m.Path(path)})
		require.NoError(t, err)

		assert.Len(t, sources, 1)
	})

	t.Run("tilde expands home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		mainPath := filepath.Join(home, "home.lua")
		copyExampleFile(t, filepath.Join(examplePath(t, "basic"), "main.lua"), mainPath)

		sources, err := adapter.Get([]m.Path{"~"})
		require.NoError(t, err)

		assert.NotNilf(t, findSourceByOrigin(sources, mainPath), "Get() did not include %s", mainPath)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := adapter.Get([]m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("no roots", func(t *testing.T) {
		sources, err := adapter.Get(nil)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})
}

func TestParseRootPath(t *testing.T) {
	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{in: "./...", path: ".", recursive: true},
		{in: "...", path: ".", recursive: true},
		{in: "scripts/...", path: "scripts", recursive: true},
		{in: "scripts", path: "scripts", recursive: false},
		{in: "", path: "", recursive: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, recursive := parseRootPath(tt.in)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.recursive, recursive)
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	writeTestBytes(t, path, []byte(content))
}

func writeTestBytes(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

func findSourceByOrigin(sources []m.Source, origin string) *m.Source {
	for i := range sources {
		if sources[i].Origin != nil && string(sources[i].Origin.Path) == origin {
			return &sources[i]
		}
	}

	return nil
}

func assertSource(t *testing.T, source *m.Source, originPath string, originContent []byte) {
	t.Helper()

	if source == nil {
		require.Fail(t, "source is nil")
	}

	if source.Origin == nil {
		require.Fail(t, "Origin is nil")
	}

	assert.Equal(t, m.Path(originPath), source.Origin.Path)
	assert.Equal(t, hashBytes(originContent), source.Origin.Hash)
}

func hashBytes(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}

func copyExampleFile(t *testing.T, src, dst string) {
	t.Helper()
	content := readFileBytes(t, src)
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))
	require.NoError(t, os.WriteFile(dst, content, 0o644))
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}
