package cli

import "testing"

func TestQueryCmdComputesLandmarksForInitialState(t *testing.T) {
	path := writeChainTask(t)

	cmd := newQueryCmd()
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("query command failed: %v", err)
	}
}

func TestQueryCmdAcceptsExplicitState(t *testing.T) {
	path := writeChainTask(t)

	cmd := newQueryCmd()
	cmd.SetArgs([]string{path, "--state", "0,0"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("query command failed: %v", err)
	}
}

func TestQueryCmdRejectsMalformedState(t *testing.T) {
	path := writeChainTask(t)

	cmd := newQueryCmd()
	cmd.SetArgs([]string{path, "--state", "not-a-number"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for a malformed --state value")
	}
}
