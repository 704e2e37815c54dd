package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	domainmocks "hotedit.dev/pkg/hotedit/internal/domain/mocks"
)

// newTestRootCmd builds a root command with sub attached, logging into a
// temporary file and dispatching to a mock workflow.
func newTestRootCmd(t *testing.T, sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer, *domainmocks.MockWorkflow) {
	t.Helper()

	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "hotedit.log"))
	t.Cleanup(func() { viper.Set(logFilenameKey, defaultLogFilename) })

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(sub...)

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, output, mockWorkflow
}
