package domain

import (
	"slices"
	"strings"

	m "github.com/mouse-blink/luarename/internal/model"
)

// ApplyPlan rewrites every standalone occurrence of each planned name. Longer
// names are applied first so a short name never clips a longer one. Member
// access (t.x, t:x) and substrings of longer identifiers are left alone.
// String literals and comments are not protected.
func ApplyPlan(source string, plan m.RenamePlan) string {
	if plan.IsEmpty() {
		return source
	}

	renames := slices.Clone(plan.Renames)
	slices.SortStableFunc(renames, func(a, b m.RenameEntry) int {
		return len(b.From) - len(a.From)
	})

	out := source
	for _, entry := range renames {
		out = replaceIdentifier(out, entry.From, entry.To)
	}

	return out
}

func replaceIdentifier(text, from, to string) string {
	if from == "" {
		return text
	}

	var (
		sb       strings.Builder
		last     int
		replaced bool
	)

	for i := 0; i <= len(text)-len(from); {
		idx := strings.Index(text[i:], from)
		if idx < 0 {
			break
		}

		start := i + idx
		end := start + len(from)

		if !isStandalone(text, start, end) {
			i = start + 1

			continue
		}

		sb.WriteString(text[last:start])
		sb.WriteString(to)

		last, i, replaced = end, end, true
	}

	if !replaced {
		return text
	}

	sb.WriteString(text[last:])

	return sb.String()
}

// isStandalone reports whether text[start:end] is a whole identifier that is
// not the key of a member access. A dot that belongs to the ".." operator does
// not count as member access.
func isStandalone(text string, start, end int) bool {
	if start > 0 {
		prev := text[start-1]
		if isIdentByte(prev) || prev == ':' {
			return false
		}

		if prev == '.' && (start < 2 || text[start-2] != '.') {
			return false
		}
	}

	if end < len(text) && isIdentByte(text[end]) {
		return false
	}

	return true
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
