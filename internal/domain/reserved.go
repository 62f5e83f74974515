package domain

// luaKeywords are the reserved words of Lua 5.3.
var luaKeywords = map[string]struct{}{
	"and": {}, "break": {}, "do": {}, "else": {}, "elseif": {}, "end": {},
	"false": {}, "for": {}, "function": {}, "goto": {}, "if": {}, "in": {},
	"local": {}, "nil": {}, "not": {}, "or": {}, "repeat": {}, "return": {},
	"then": {}, "true": {}, "until": {}, "while": {},
}

// luaBuiltins are standard globals and library tables. A script may shadow
// them, but renaming such a declaration is never offered.
var luaBuiltins = map[string]struct{}{
	"_G": {}, "_VERSION": {}, "assert": {}, "collectgarbage": {}, "dofile": {},
	"error": {}, "getmetatable": {}, "ipairs": {}, "load": {}, "loadfile": {},
	"next": {}, "pairs": {}, "pcall": {}, "print": {}, "rawequal": {},
	"rawget": {}, "rawlen": {}, "rawset": {}, "require": {}, "select": {},
	"setmetatable": {}, "tonumber": {}, "tostring": {}, "type": {}, "xpcall": {},
	"coroutine": {}, "string": {}, "table": {}, "math": {}, "io": {}, "os": {},
	"debug": {}, "utf8": {}, "package": {},
}

// IsReserved reports whether name is a Lua keyword or a denylisted builtin.
func IsReserved(name string) bool {
	if _, ok := luaKeywords[name]; ok {
		return true
	}

	_, ok := luaBuiltins[name]

	return ok
}
