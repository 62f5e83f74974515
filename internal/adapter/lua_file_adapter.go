package adapter

import (
	"bytes"

	"github.com/yuin/gopher-lua/ast"
	"github.com/yuin/gopher-lua/parse"
)

// LuaFileAdapter encapsulates Lua parsing so the domain layer only deals with
// the resulting syntax tree.
type LuaFileAdapter interface {
	// Parse builds the statement list of a Lua chunk. The name is only used in
	// error messages.
	Parse(name string, src []byte) ([]ast.Stmt, error)
}

// LocalLuaFileAdapter provides a concrete LuaFileAdapter backed by gopher-lua.
type LocalLuaFileAdapter struct{}

// NewLocalLuaFileAdapter constructs a LocalLuaFileAdapter.
func NewLocalLuaFileAdapter() *LocalLuaFileAdapter {
	return &LocalLuaFileAdapter{}
}

// Parse parses src as a Lua 5.3 chunk. gopher-lua reads the 5.1 grammar, so
// 5.3 operators are lowered first; the tree is only used for names.
func (a *LocalLuaFileAdapter) Parse(name string, src []byte) ([]ast.Stmt, error) {
	chunk, err := parse.Parse(bytes.NewReader(lowerOperators(src)), name)
	if err != nil {
		return nil, err
	}

	return chunk, nil
}
