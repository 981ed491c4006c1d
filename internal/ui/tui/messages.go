package tui

import "github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type exportDoneMsg struct {
	outcome usecase.ExportOutcome
	err     error
}
