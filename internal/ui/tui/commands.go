package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

const exportTimeout = 30 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

// cmdExport runs the export off the UI loop. draft is already a copy.
func cmdExport(exp Exporter, draft domain.FrameworkDraft) tea.Cmd {
	return func() tea.Msg {
		if exp == nil {
			return exportDoneMsg{err: &domain.OpError{
				Op:   "tui.export",
				Kind: domain.KindInvalidConfig,
				Err:  errors.New("exporter is nil"),
			}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		out, err := exp.Execute(ctx, draft)
		return exportDoneMsg{outcome: out, err: err}
	}
}
