// Package model defines the data structures shared by the rename pipeline.
package model

// IdentifierKind classifies where a name was declared.
type IdentifierKind string

const (
	// KindLocal marks names introduced by local statements, local functions and for loops.
	KindLocal IdentifierKind = "local"
	// KindParam marks function parameters.
	KindParam IdentifierKind = "param"
	// KindFunction marks function names. Scan never emits it: plain function
	// statements are globals and local functions are locals. It exists for
	// suggestion sources and hand written plans that name a function.
	KindFunction IdentifierKind = "function"
	// KindGlobal marks non-local function declarations.
	KindGlobal IdentifierKind = "global"
)

// IdentifierMeta is one declared name and how it was declared.
type IdentifierMeta struct {
	Name string         `json:"name"`
	Kind IdentifierKind `json:"kind"`
}
