package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/mouse-blink/luarename/internal/model"
	"github.com/spf13/cobra"
)

func newFactoryCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newFactoryCmd()

	if ui := NewUI(cmd, true); !isTUI(ui) {
		t.Errorf("NewUI(true) returned %T, want *TUI", ui)
	}

	if ui := NewUI(cmd, false); isTUI(ui) {
		t.Errorf("NewUI(false) returned %T, want *SimpleUI", ui)
	}
}

func isTUI(ui UI) bool {
	_, ok := ui.(*TUI)

	return ok
}

func TestNewUI_PlainPlanGoesToStdout(t *testing.T) {
	cmd, out, errOut := newFactoryCmd()
	ui := NewUI(cmd, false)

	if err := ui.Start(WithPlanMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	plan := m.RenamePlan{Renames: []m.RenameEntry{{From: "n", To: "count", Kind: m.KindLocal}}}
	if err := ui.DisplayPlans([]m.Report{{Source: source("scripts/loop.lua"), Plan: plan}}); err != nil {
		t.Fatalf("DisplayPlans() error = %v", err)
	}

	ui.Wait()
	ui.Close()

	for _, want := range []string{"FROM", "scripts/loop.lua", "count", "1 RENAMES"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("stdout missing %q\nstdout:\n%s", want, out.String())
		}
	}

	if errOut.Len() != 0 {
		t.Fatalf("plan mode wrote to stderr:\n%s", errOut.String())
	}
}

func TestNewUI_PlainRenameSummaryGoesToStderr(t *testing.T) {
	cmd, out, errOut := newFactoryCmd()
	ui := NewUI(cmd, false)

	if err := ui.Start(WithRenameMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayCompletedFileInfo(m.Report{
		Source: source("scripts/loop.lua"),
		Plan:   m.RenamePlan{Renames: []m.RenameEntry{{From: "n", To: "count", Kind: m.KindLocal}}},
		Output: "scripts/loop_refactored.lua",
	})
	ui.Wait()

	if out.Len() != 0 {
		t.Fatalf("rename summary wrote to stdout:\n%s", out.String())
	}

	for _, want := range []string{"scripts/loop.lua", "scripts/loop_refactored.lua", "TOTAL FILES 1"} {
		if !strings.Contains(errOut.String(), want) {
			t.Fatalf("stderr missing %q\nstderr:\n%s", want, errOut.String())
		}
	}
}

func TestIsTTY(t *testing.T) {
	regular, err := os.Create(filepath.Join(t.TempDir(), "out.lua"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	defer regular.Close()

	if IsTTY(regular) {
		t.Errorf("IsTTY(regular file) = true, want false")
	}

	if IsTTY(&bytes.Buffer{}) {
		t.Errorf("IsTTY(buffer) = true, want false")
	}

	closed, err := os.Create(filepath.Join(t.TempDir(), "closed.lua"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	closed.Close()

	if IsTTY(closed) {
		t.Errorf("IsTTY(closed file) = true, want false")
	}

	device, err := os.Open(os.DevNull)
	if err != nil {
		t.Skipf("%s not available", os.DevNull)
	}
	defer device.Close()

	if !IsTTY(device) {
		t.Errorf("IsTTY(%s) = false, want true", os.DevNull)
	}
}
