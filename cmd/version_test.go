package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "hotedit version")
	assert.Contains(t, output, "go version")
}

func TestBuildSetting(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "4f2a9c1"},
		{Key: "vcs.modified", Value: "true"},
	}}

	assert.Equal(t, "4f2a9c1", buildSetting(info, "vcs.revision"))
	assert.Equal(t, "true", buildSetting(info, "vcs.modified"))
	assert.Empty(t, buildSetting(info, "vcs.time"))
}
