package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainmocks "autocomment.dev/pkg/autocomment/internal/domain/mocks"
)

func TestHistoryCmd_OpensHistoryStore(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withHistory := stubWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(t, newHistoryCmd())

	mockWorkflow.EXPECT().History(mock.Anything).Return(nil)

	cmd.SetArgs([]string{"history"})
	require.NoError(t, cmd.Execute())
	assert.True(t, *withHistory)
}

func TestCleanCmd_SkipsHistoryStore(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withHistory := stubWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(t, newCleanCmd())

	mockWorkflow.EXPECT().Clean(mock.Anything).Return(nil)

	cmd.SetArgs([]string{"clean"})
	require.NoError(t, cmd.Execute())
	assert.False(t, *withHistory)
}
