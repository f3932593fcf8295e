package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mkaudit.dev/pkg/mkaudit/internal/domain"
	domainmocks "mkaudit.dev/pkg/mkaudit/internal/domain/mocks"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".mkaudit-reports") && args.Session == ""
	})).Return(nil)

	_, err := runCommand(t, newViewCmd(), "view")
	require.NoError(t, err)
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	})).Return(nil)

	_, err := runCommand(t, newViewCmd(), "view", "--output", "./reports-dir")
	require.NoError(t, err)
}

func TestViewCmd_SessionArgument(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Session == "0b8f6d6c"
	})).Return(nil)

	_, err := runCommand(t, newViewCmd(), "view", "0b8f6d6c")
	require.NoError(t, err)
}

func TestViewCmd_TooManyArgsAreRejected(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	_, err := runCommand(t, newViewCmd(), "view", "a", "b")
	require.Error(t, err)
}
