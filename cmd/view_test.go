package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autocomment.dev/pkg/autocomment/internal/domain"
	domainmocks "autocomment.dev/pkg/autocomment/internal/domain/mocks"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

func TestViewCmd_PassesPathAndLanguage(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withHistory := stubWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Path == m.Path("app.js") && args.Language.Normalize() == m.LanguageJavaScript
	})).Return(nil)

	cmd.SetArgs([]string{"view", "app.js"})
	require.NoError(t, cmd.Execute())
	assert.False(t, *withHistory)
}

func TestViewCmd_RequiresExactlyOneFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	for _, args := range [][]string{{"view"}, {"view", "a.js", "b.js"}} {
		cmd, _ := newTestRoot(t, newViewCmd())
		cmd.SetArgs(args)
		require.Error(t, cmd.Execute())
	}
}

func TestViewCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(errors.New("boom"))

	cmd.SetArgs([]string{"view", "app.js"})
	require.EqualError(t, cmd.Execute(), "boom")
}
