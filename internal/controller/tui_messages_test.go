package controller

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/luarename/internal/model"
)

func source(path string) m.Source {
	return m.Source{Origin: &m.File{Path: m.Path(path), Hash: "hash-" + path}}
}

func TestFileItem_FilterValue(t *testing.T) {
	item := fileItem{path: "path/to/file.lua", status: statusRenamed}
	if got := item.FilterValue(); got != "path/to/file.lua renamed" {
		t.Fatalf("FilterValue() = %q", got)
	}
}

func TestNewFileItem_Status(t *testing.T) {
	plan := m.RenamePlan{Renames: []m.RenameEntry{{From: "a", To: "localValue", Kind: m.KindLocal}}}

	tests := []struct {
		name   string
		report m.Report
		want   string
	}{
		{name: "renamed", report: m.Report{Source: source("a.lua"), Plan: plan}, want: statusRenamed},
		{name: "unchanged", report: m.Report{Source: source("a.lua")}, want: statusUnchanged},
		{name: "skipped", report: m.Report{Source: source("a.lua"), Skipped: true}, want: statusSkipped},
		{name: "failed", report: m.Report{Source: source("a.lua"), Plan: plan, Err: errors.New("boom")}, want: statusFailed},
		{name: "no origin", report: m.Report{}, want: statusUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newFileItem(tt.report).status; got != tt.want {
				t.Fatalf("status = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileItem_Detail(t *testing.T) {
	item := newFileItem(m.Report{
		Source: source("a.lua"),
		Output: "a_refactored.lua",
		Plan: m.RenamePlan{Renames: []m.RenameEntry{
			{From: "a", To: "localValue", Kind: m.KindLocal},
			{From: "f", To: "doWork", Kind: m.KindFunction},
		}},
	})

	want := "- a\n+ localValue  (local)\n- f\n+ doWork  (function)"
	if got := item.detail(); got != want {
		t.Fatalf("detail() = %q, want %q", got, want)
	}

	if item.count() != 2 || item.output != "a_refactored.lua" {
		t.Fatalf("unexpected item %+v", item)
	}

	failed := newFileItem(m.Report{Source: source("b.lua"), Err: errors.New("lua parse error: bad")})
	if got := failed.detail(); got != "! lua parse error: bad" {
		t.Fatalf("detail() = %q", got)
	}
}
