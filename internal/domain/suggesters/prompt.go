package suggesters

import (
	"encoding/json"
	"strings"

	m "github.com/mouse-blink/luarename/internal/model"
)

const promptRules = `You are refactoring Lua code. Suggest clearer names for identifiers.

Rules:
- Output STRICT JSON only: {"suggestions":[{"from":"...","to":"..."}]}
- Keep 'from' exactly as provided.
- 'to' must be a valid Lua identifier: ^[A-Za-z_][A-Za-z0-9_]*$
- Prefer descriptive camelCase.
- Avoid Lua keywords and standard library names.
- Do NOT rename fields accessed as tbl.x unless x is a declared local/function/param name in the provided list.
`

// BuildPrompt renders the instruction text, the candidate list and the source.
func BuildPrompt(source string, candidates []m.IdentifierMeta) string {
	if candidates == nil {
		candidates = []m.IdentifierMeta{}
	}

	// IdentifierMeta only holds strings, so marshaling cannot fail.
	list, _ := json.Marshal(candidates)

	var sb strings.Builder

	sb.WriteString(promptRules)
	sb.WriteString("\nIdentifiers to rename (declared names): ")
	sb.Write(list)
	sb.WriteString("\n\nLua code:\n\n")
	sb.WriteString(source)

	return sb.String()
}
