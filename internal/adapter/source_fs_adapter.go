// Package adapter contains infrastructure adapters for the luarename CLI.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/luarename/internal/model"
)

const (
	luaFileExt = ".lua"

	// RefactoredSuffix is appended to the base name of generated files. Files
	// carrying it are never picked up as inputs.
	RefactoredSuffix = "_refactored"
)

// ErrFileTooLarge is returned by ReadFileLimit when a file exceeds the cap.
var ErrFileTooLarge = errors.New("file too large")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when collecting and rewriting Lua files.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get collects Lua files for the provided roots. A root ending in /...
	// is scanned recursively.
	Get(roots []m.Path) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadFileLimit loads a file but fails with ErrFileTooLarge when it is
	// larger than maxBytes. A non-positive maxBytes disables the cap.
	ReadFileLimit(path m.Path, maxBytes int64) ([]byte, error)

	// HashFile returns a stable fingerprint (e.g. SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Lua source files for the provided roots, deduplicated by absolute path.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	add := func(source m.Source) {
		if _, exists := seen[string(source.Origin.Path)]; exists {
			return
		}

		seen[string(source.Origin.Path)] = struct{}{}
		sources = append(sources, source)
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			// An explicitly named file is taken even without the .lua extension.
			source, err := a.sourceFor(rootPath)
			if err != nil {
				return nil, err
			}

			add(source)

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !isLuaInput(path) {
				return nil
			}

			source, err := a.sourceFor(path)
			if err != nil {
				return err
			}

			add(source)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// ReadFileLimit loads file contents from disk, refusing files above maxBytes.
func (a *LocalSourceFSAdapter) ReadFileLimit(path m.Path, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return a.ReadFile(path)
	}

	// #nosec G304 - path comes from the user's own selection
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, err
	}

	if int64(len(content)) > maxBytes {
		return nil, fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, maxBytes)
	}

	return content, nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func (a *LocalSourceFSAdapter) sourceFor(path string) (m.Source, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, err
	}

	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, fmt.Errorf("hash error for %s: %w", absPath, err)
	}

	return m.Source{Origin: &m.File{Path: m.Path(absPath), Hash: hash}}, nil
}

// isLuaInput reports whether a walked file should be renamed: .lua in any
// letter case, excluding outputs of a previous run.
func isLuaInput(path string) bool {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, luaFileExt) {
		return false
	}

	base := strings.TrimSuffix(filepath.Base(path), ext)

	return !strings.HasSuffix(base, RefactoredSuffix)
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
