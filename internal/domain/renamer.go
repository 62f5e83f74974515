// Package domain contains the Lua rename pipeline: scanning, planning, rewriting
// and the workflow that runs it over many files.
package domain

import (
	"context"
	"strings"

	"github.com/yuin/gopher-lua/ast"

	"github.com/mouse-blink/luarename/internal/adapter"
	m "github.com/mouse-blink/luarename/internal/model"
)

const defaultChunkName = "chunk"

// ParseError reports source that is not valid Lua.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return "lua parse error: " + strings.TrimSpace(e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Renamer runs the whole pipeline for one piece of source: parse, plan and
// rewrite.
type Renamer struct {
	lua     adapter.LuaFileAdapter
	planner Planner
}

// NewRenamer builds a Renamer on top of a parser and a planner.
func NewRenamer(lua adapter.LuaFileAdapter, planner Planner) *Renamer {
	return &Renamer{lua: lua, planner: planner}
}

// Rename returns the rewritten source together with the plan that produced it.
// Only a parse failure is an error.
func (r *Renamer) Rename(ctx context.Context, source string) (string, m.RenamePlan, error) {
	return r.RenameFile(ctx, defaultChunkName, source)
}

// RenameFile is Rename with a chunk name used in parse error messages.
func (r *Renamer) RenameFile(ctx context.Context, name, source string) (string, m.RenamePlan, error) {
	chunk, err := r.Parse(name, source)
	if err != nil {
		return "", m.RenamePlan{}, err
	}

	plan := r.planner.BuildPlan(ctx, source, chunk)
	if plan.IsEmpty() {
		return source, plan, nil
	}

	return ApplyPlan(source, plan), plan, nil
}

// Parse parses source, reporting failures as *ParseError.
func (r *Renamer) Parse(name, source string) ([]ast.Stmt, error) {
	chunk, err := r.lua.Parse(name, []byte(source))
	if err != nil {
		return nil, &ParseError{Name: name, Err: err}
	}

	return chunk, nil
}
