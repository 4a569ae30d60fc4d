package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const chainTaskTOML = `
[[variables]]
name = "a"
domain_size = 2

[[variables]]
name = "b"
domain_size = 2

[[operators]]
name = "o_a"
eff = [{ var = 0, value = 1 }]
cost = 1

[[operators]]
name = "o_b"
pre = [{ var = 0, value = 1 }]
eff = [{ var = 1, value = 1 }]
cost = 1

init = [0, 0]
goal = [{ var = 1, value = 1 }]
`

func writeChainTask(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "task.toml")
	if err := os.WriteFile(path, []byte(chainTaskTOML), 0o644); err != nil {
		t.Fatalf("writing fixture task: %v", err)
	}
	return path
}

func TestBuildCmdValidatesTask(t *testing.T) {
	path := writeChainTask(t)

	cmd := newBuildCmd()
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("build command failed: %v", err)
	}
}

func TestBuildCmdRejectsMissingTask(t *testing.T) {
	cmd := newBuildCmd()
	cmd.SetArgs([]string{"/nonexistent/task.toml"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for a missing task file")
	}
}
