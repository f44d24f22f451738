package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{" JSON ", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewStartConfig(t *testing.T) {
	assert.Equal(t, ModeList, newStartConfig(nil).mode)
	assert.Equal(t, ModeAnnotate, newStartConfig([]StartOption{WithAnnotateMode()}).mode)
	assert.Equal(t, ModeList, newStartConfig([]StartOption{WithAnnotateMode(), WithListMode()}).mode)
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestSimpleUI_StartCancelled(t *testing.T) {
	cmd, _, _ := newTestCommand()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, NewSimpleUI(cmd).Start(ctx), context.Canceled)
}
