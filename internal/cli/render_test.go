package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalmcut/dalmcut/pkg/task"
)

func TestParseStateDefaultsToFallback(t *testing.T) {
	fallback := task.State{0, 1}
	got, err := parseState("", fallback)
	if err != nil {
		t.Fatalf("parseState(\"\") returned error: %v", err)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("parseState(\"\") = %v, want %v", got, fallback)
	}
}

func TestParseStateParsesCommaSeparatedValues(t *testing.T) {
	got, err := parseState("1, 0, 2", task.State{})
	if err != nil {
		t.Fatalf("parseState returned error: %v", err)
	}
	want := task.State{1, 0, 2}
	if len(got) != len(want) {
		t.Fatalf("parseState length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseState[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseStateRejectsMalformedValue(t *testing.T) {
	if _, err := parseState("1,x,2", task.State{}); err == nil {
		t.Error("expected an error for a non-numeric state value")
	}
}

func TestErrUnknownFormat(t *testing.T) {
	err := errUnknownFormat("json")
	if err == nil {
		t.Fatal("errUnknownFormat returned nil")
	}
	if got := err.Error(); got != "unknown format: json (must be 'svg' or 'dot')" {
		t.Errorf("Error() = %q", got)
	}
}

func TestRenderCmdWritesDOTFile(t *testing.T) {
	taskPath := writeChainTask(t)
	outPath := filepath.Join(t.TempDir(), "graph.dot")

	cmd := newRenderCmd()
	cmd.SetArgs([]string{taskPath, "--format", "dot", "--output", outPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading rendered output: %v", err)
	}
	if !strings.Contains(string(data), "digraph") {
		t.Errorf("rendered DOT output missing digraph header: %s", data)
	}
}

func TestRenderCmdRejectsUnknownFormat(t *testing.T) {
	taskPath := writeChainTask(t)

	cmd := newRenderCmd()
	cmd.SetArgs([]string{taskPath, "--format", "json"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unsupported render format")
	}
}
