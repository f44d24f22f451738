package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autocomment.dev/pkg/autocomment/internal/domain"
	domainmocks "autocomment.dev/pkg/autocomment/internal/domain/mocks"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

func TestAnnotateCmd_PassesPathsAndFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withHistory := stubWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(t, newAnnotateCmd())

	var got domain.AnnotateArgs

	mockWorkflow.EXPECT().Annotate(mock.Anything, mock.Anything).
		Run(func(_ context.Context, args domain.AnnotateArgs) { got = args }).
		Return(nil)

	cmd.SetArgs([]string{"annotate", "./src/...", "app.js", "--dry-run", "--diff"})
	require.NoError(t, cmd.Execute())

	assert.True(t, *withHistory)
	assert.Equal(t, []m.Path{"./src/...", "app.js"}, got.Paths)
	assert.True(t, got.DryRun)
	assert.True(t, got.Diff)
	assert.True(t, got.UseCache)
	assert.Contains(t, got.Exclude, "**/node_modules/**")
}

func TestAnnotateCmd_RunAlias(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(t, newAnnotateCmd())

	mockWorkflow.EXPECT().Annotate(mock.Anything, mock.MatchedBy(func(args domain.AnnotateArgs) bool {
		return len(args.Paths) == 0 && !args.DryRun
	})).Return(nil)

	cmd.SetArgs([]string{"run"})
	require.NoError(t, cmd.Execute())
}
