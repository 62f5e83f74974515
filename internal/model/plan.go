package model

// Suggestion is a raw proposal from a suggestion source. Nothing about To is
// trusted until the planner has sanitized it.
type Suggestion struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RenameEntry is an accepted rename decision.
type RenameEntry struct {
	From string         `yaml:"from"`
	To   string         `yaml:"to"`
	Kind IdentifierKind `yaml:"kind"`
}

// RenamePlan lists accepted renames in suggestion order.
type RenamePlan struct {
	Renames []RenameEntry `yaml:"renames"`
}

// IsEmpty reports whether the plan renames nothing.
func (p RenamePlan) IsEmpty() bool {
	return len(p.Renames) == 0
}
