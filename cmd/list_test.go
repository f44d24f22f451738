package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autocomment.dev/pkg/autocomment/internal/controller"
	"autocomment.dev/pkg/autocomment/internal/domain"
	domainmocks "autocomment.dev/pkg/autocomment/internal/domain/mocks"
)

func TestListCmd_Formats(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want controller.OutputFormat
	}{
		{"default table", []string{"list"}, controller.FormatTable},
		{"json", []string{"list", "--format", "json"}, controller.FormatJSON},
		{"yaml shorthand", []string{"list", "-f", "yaml"}, controller.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			stubWorkflow(t, mockWorkflow)

			cmd, _ := newTestRoot(t, newListCmd())

			mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
				return args.Format == tt.want
			})).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestListCmd_RejectsUnknownFormat(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(t, newListCmd())

	cmd.SetArgs([]string{"list", "--format", "xml"})
	require.Error(t, cmd.Execute())
}
