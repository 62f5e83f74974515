package domain

import (
	"strings"

	"github.com/mouse-blink/luarename/internal/adapter"
)

const ignoreDirective = "luarename:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(name string) bool {
	if r.all {
		return true
	}

	_, ok := r.names[name]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads the text following a "--" comment opener.
// Lua identifiers are case sensitive, so names are kept as written.
func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "[[") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "[["))
		s = strings.TrimSpace(strings.TrimSuffix(s, "]]"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.FieldsFunc(rest, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		rule.names[part] = struct{}{}
	}

	return rule, true
}

// buildIgnoreRule merges every directive found in the comments of source.
// Directives apply to the whole file regardless of where they appear.
func buildIgnoreRule(source string) ignoreRule {
	var rule ignoreRule

	for _, comment := range adapter.LuaComments(source) {
		r, ok := parseIgnoreDirective(comment)
		if !ok {
			continue
		}

		mergeIgnoreRule(&rule, r)
	}

	return rule
}

// IgnoresFile reports whether source carries a bare ignore directive.
func IgnoresFile(source string) bool {
	return buildIgnoreRule(source).all
}
