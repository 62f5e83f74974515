package domain

import (
	"github.com/yuin/gopher-lua/ast"

	m "github.com/mouse-blink/luarename/internal/model"
)

// Scan collects the names declared in chunk, in source order, one entry per
// (name, kind). Only declaration sites count: local statements (local
// functions included), plain-named function statements, parameters of every
// function body and for-loop variables. Keywords and builtins are dropped.
//
// Names are not scoped: two unrelated locals called x yield a single entry.
func Scan(chunk []ast.Stmt) []m.IdentifierMeta {
	set := identifierSet{seen: make(map[m.IdentifierMeta]struct{})}

	inspect(chunk, func(node any) bool {
		switch n := node.(type) {
		case *ast.LocalAssignStmt:
			for _, name := range n.Names {
				set.add(name, m.KindLocal)
			}
		case *ast.FuncDefStmt:
			// a.b and a:b definitions assign a field; only bare names declare.
			if n.Name != nil {
				if ident, ok := n.Name.Func.(*ast.IdentExpr); ok {
					set.add(ident.Value, m.KindGlobal)
				}
			}
		case *ast.FunctionExpr:
			if n.ParList != nil {
				for _, name := range n.ParList.Names {
					set.add(name, m.KindParam)
				}
			}
		case *ast.NumberForStmt:
			set.add(n.Name, m.KindLocal)
		case *ast.GenericForStmt:
			for _, name := range n.Names {
				set.add(name, m.KindLocal)
			}
		}

		return true
	})

	out := make([]m.IdentifierMeta, 0, len(set.items))
	for _, id := range set.items {
		if IsReserved(id.Name) {
			continue
		}

		out = append(out, id)
	}

	return out
}

// References returns every plain name the chunk reads, calls or assigns,
// declared or not.
func References(chunk []ast.Stmt) map[string]struct{} {
	refs := make(map[string]struct{})

	inspect(chunk, func(node any) bool {
		if ident, ok := node.(*ast.IdentExpr); ok && ident.Value != "" {
			refs[ident.Value] = struct{}{}
		}

		return true
	})

	return refs
}

type identifierSet struct {
	seen  map[m.IdentifierMeta]struct{}
	items []m.IdentifierMeta
}

func (s *identifierSet) add(name string, kind m.IdentifierKind) {
	if name == "" {
		return
	}

	id := m.IdentifierMeta{Name: name, Kind: kind}
	if _, ok := s.seen[id]; ok {
		return
	}

	s.seen[id] = struct{}{}
	s.items = append(s.items, id)
}
