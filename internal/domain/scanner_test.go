package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/luarename/internal/model"
)

func TestScan_BasicExample(t *testing.T) {
	chunk := parseLua(t, readExample(t, "basic", "main.lua"))

	got := Scan(chunk)

	assert.Equal(t, []m.IdentifierMeta{
		{Name: "t", Kind: m.KindLocal},
		{Name: "f", Kind: m.KindLocal},
		{Name: "a", Kind: m.KindParam},
		{Name: "b", Kind: m.KindParam},
		{Name: "g", Kind: m.KindGlobal},
		{Name: "x", Kind: m.KindParam},
		{Name: "s", Kind: m.KindLocal},
		{Name: "i", Kind: m.KindLocal},
	}, got)
}

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []m.IdentifierMeta
	}{
		{
			name: "empty chunk",
			src:  "",
			want: []m.IdentifierMeta{},
		},
		{
			name: "generic and numeric for variables",
			src:  "for k, v in pairs(t) do end\nfor n = 1, 2 do end\n",
			want: []m.IdentifierMeta{
				{Name: "k", Kind: m.KindLocal},
				{Name: "v", Kind: m.KindLocal},
				{Name: "n", Kind: m.KindLocal},
			},
		},
		{
			name: "anonymous function parameters",
			src:  "local cb = function(p, q) return p end\ncall(function(r) end)\n",
			want: []m.IdentifierMeta{
				{Name: "cb", Kind: m.KindLocal},
				{Name: "p", Kind: m.KindParam},
				{Name: "q", Kind: m.KindParam},
				{Name: "r", Kind: m.KindParam},
			},
		},
		{
			name: "dotted and method function names register nothing",
			src:  "local M = {}\nfunction M.run(a) end\nfunction M:stop(b) end\n",
			want: []m.IdentifierMeta{
				{Name: "M", Kind: m.KindLocal},
				{Name: "a", Kind: m.KindParam},
				{Name: "b", Kind: m.KindParam},
			},
		},
		{
			name: "keywords and builtins are excluded",
			src:  "local print, string = 1, 2\nlocal function pairs(type) end\nlocal ok = 1\n",
			want: []m.IdentifierMeta{
				{Name: "ok", Kind: m.KindLocal},
			},
		},
		{
			name: "one entry per name and kind",
			src:  "local x = 1\nlocal x = 2\nfunction f(x) end\nfunction f() end\n",
			want: []m.IdentifierMeta{
				{Name: "x", Kind: m.KindLocal},
				{Name: "f", Kind: m.KindGlobal},
				{Name: "x", Kind: m.KindParam},
			},
		},
		{
			name: "nested blocks are traversed",
			src: "while true do\n  if c then\n    local a = 1\n  elseif d then\n    repeat local b = 2 until b\n" +
				"  else\n    do local e = 3 end\n  end\nend\n",
			want: []m.IdentifierMeta{
				{Name: "a", Kind: m.KindLocal},
				{Name: "b", Kind: m.KindLocal},
				{Name: "e", Kind: m.KindLocal},
			},
		},
		{
			name: "functions inside table constructors and calls",
			src:  "local t = { run = function(y) local z = y end }\nreturn t.run(function(w) end)\n",
			want: []m.IdentifierMeta{
				{Name: "t", Kind: m.KindLocal},
				{Name: "y", Kind: m.KindParam},
				{Name: "z", Kind: m.KindLocal},
				{Name: "w", Kind: m.KindParam},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(parseLua(t, tt.src)))
		})
	}
}

func TestScan_NeverReturnsReserved(t *testing.T) {
	chunk := parseLua(t, "local table, math, io = {}, {}, {}\nlocal function require(debug) end\n")

	for _, id := range Scan(chunk) {
		assert.False(t, IsReserved(id.Name), id.Name)
	}
}

func TestScan_NeverReturnsFunctionKind(t *testing.T) {
	chunk := parseLua(t, "local function f() end\nfunction g(a) return function(b) end end\nlocal h = function() end\n")

	for _, id := range Scan(chunk) {
		assert.NotEqual(t, m.KindFunction, id.Kind, id.Name)
	}
}

func TestReferences(t *testing.T) {
	chunk := parseLua(t, "local a = b + c.d\nprint(a, e:f())\ng = 1\n")

	refs := References(chunk)

	for _, name := range []string{"b", "c", "print", "a", "e", "g"} {
		assert.Contains(t, refs, name)
	}

	assert.NotContains(t, refs, "d")
	assert.NotContains(t, refs, "f")
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("end"))
	assert.True(t, IsReserved("goto"))
	assert.True(t, IsReserved("_G"))
	assert.True(t, IsReserved("setmetatable"))
	assert.False(t, IsReserved("value"))
	assert.False(t, IsReserved("End"))
}
