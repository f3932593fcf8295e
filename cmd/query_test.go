package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mkaudit.dev/pkg/mkaudit/internal/controller"
	"mkaudit.dev/pkg/mkaudit/internal/domain"
	domainmocks "mkaudit.dev/pkg/mkaudit/internal/domain/mocks"
)

func TestQueryCmd_PassesFilesAndDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Query(mock.Anything, mock.MatchedBy(func(args domain.QueryArgs) bool {
		return len(args.Files) == 1 &&
			args.Files[0] == "include/x.h" &&
			args.Format == controller.QueryFormatText &&
			len(args.IgnorePrefixes) == 3
	})).Return(nil).Once()

	_, err := runCommand(t, newQueryCmd(), "query", "include/x.h")
	require.NoError(t, err)
}

func TestQueryCmd_YAMLFormatAndPrefixes(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Query(mock.Anything, mock.MatchedBy(func(args domain.QueryArgs) bool {
		return args.Format == controller.QueryFormatYAML &&
			len(args.IgnorePrefixes) == 1 &&
			args.IgnorePrefixes[0] == "/usr/"
	})).Return(nil).Once()

	_, err := runCommand(t, newQueryCmd(), "query", "--format", "yaml", "--ignore-prefix", "/usr/", "a.c")
	require.NoError(t, err)
}

func TestQueryCmd_RequiresFiles(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	_, err := runCommand(t, newQueryCmd(), "query")
	require.Error(t, err)
}

func TestQueryCmd_RejectsUnknownFormat(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	_, err := runCommand(t, newQueryCmd(), "query", "--format", "xml", "a.c")
	require.ErrorContains(t, err, "unknown format")
}
