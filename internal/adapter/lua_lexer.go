package adapter

import (
	"bytes"
	"strings"
)

type segmentKind int

const (
	segmentCode segmentKind = iota
	segmentString
	segmentComment
)

// walkLua calls fn for consecutive code, string and comment runs of src, in
// order. Unterminated strings stop at the end of their line, unterminated long
// brackets at the end of src.
func walkLua(src []byte, fn func(kind segmentKind, text []byte)) {
	start := 0
	emit := func(kind segmentKind, from, to int) {
		if start < from {
			fn(segmentCode, src[start:from])
		}

		fn(kind, src[from:to])
		start = to
	}

	for i := 0; i < len(src); {
		switch {
		case src[i] == '-' && i+1 < len(src) && src[i+1] == '-':
			end := commentEnd(src, i+2)
			emit(segmentComment, i, end)
			i = end
		case src[i] == '"' || src[i] == '\'':
			end := quotedEnd(src, i)
			emit(segmentString, i, end)
			i = end
		case src[i] == '[':
			level, ok := longBracketOpen(src, i)
			if !ok {
				i++

				continue
			}

			end := longBracketEnd(src, i+level+2, level)
			emit(segmentString, i, end)
			i = end
		default:
			i++
		}
	}

	if start < len(src) {
		fn(segmentCode, src[start:])
	}
}

// longBracketOpen reports the level of a "[", "[=[", "[==[" ... opener at i.
func longBracketOpen(src []byte, i int) (int, bool) {
	j := i + 1
	for j < len(src) && src[j] == '=' {
		j++
	}

	if j < len(src) && src[j] == '[' {
		return j - i - 1, true
	}

	return 0, false
}

func longBracketEnd(src []byte, from, level int) int {
	if from > len(src) {
		return len(src)
	}

	closer := []byte("]" + strings.Repeat("=", level) + "]")

	idx := bytes.Index(src[from:], closer)
	if idx < 0 {
		return len(src)
	}

	return from + idx + len(closer)
}

// commentEnd finds the end of a comment whose body starts at from. The line
// break after a short comment is left to the following code.
func commentEnd(src []byte, from int) int {
	if from < len(src) && src[from] == '[' {
		if level, ok := longBracketOpen(src, from); ok {
			return longBracketEnd(src, from+level+2, level)
		}
	}

	idx := bytes.IndexByte(src[from:], '\n')
	if idx < 0 {
		return len(src)
	}

	return from + idx
}

func quotedEnd(src []byte, i int) int {
	quote := src[i]

	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		case '\n':
			return j
		}
	}

	return len(src)
}

// lowerOperators replaces the Lua 5.3 integer division and bitwise operators
// in code with "/" and "-", which the 5.1 grammar accepts. Operands and line
// breaks are untouched, so the tree declares and references the same names.
func lowerOperators(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/8)

	walkLua(src, func(kind segmentKind, text []byte) {
		if kind != segmentCode {
			out = append(out, text...)

			return
		}

		for i := 0; i < len(text); i++ {
			c := text[i]

			var next byte
			if i+1 < len(text) {
				next = text[i+1]
			}

			switch {
			case c == '/' && next == '/':
				out = append(out, " / "...)
				i++
			case (c == '<' && next == '<') || (c == '>' && next == '>'):
				out = append(out, " - "...)
				i++
			case c == '~' && next == '=':
				out = append(out, c, next)
				i++
			case c == '~' || c == '&' || c == '|':
				out = append(out, " - "...)
			default:
				out = append(out, c)
			}
		}
	})

	return out
}

// LuaComments returns the text after "--" of every comment in src. Comment
// markers inside string literals are not comments.
func LuaComments(src string) []string {
	var comments []string

	walkLua([]byte(src), func(kind segmentKind, text []byte) {
		if kind == segmentComment {
			comments = append(comments, string(text[2:]))
		}
	})

	return comments
}
