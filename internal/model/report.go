package model

// Report is the outcome of running the rename pipeline over one source file.
type Report struct {
	Source  Source
	Plan    RenamePlan
	Output  Path   // where the rewritten code went; empty for dry runs and stdout
	Skipped bool   // true when an ignore directive disabled the whole file
	Err     error  // parse or I/O failure for this file
	Code    string // rewritten code, kept for stdout output
}
