package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"autocomment.dev/pkg/autocomment/internal/domain"
)

// stubWorkflow makes every command use wf and records whether the history
// store was requested.
func stubWorkflow(t *testing.T, wf domain.Workflow) *bool {
	t.Helper()

	withHistory := new(bool)
	original := openWorkflow
	openWorkflow = func(_ *cobra.Command, history bool) (workflowDeps, error) {
		*withHistory = history
		return workflowDeps{workflow: wf, close: func() {}}, nil
	}

	t.Cleanup(func() { openWorkflow = original })

	return withHistory
}

// newTestRoot builds a fresh root command with sub attached. The working
// directory moves to a temp dir so the log file lands there.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}
