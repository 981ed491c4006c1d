package tui

import (
	"context"
	"log/slog"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

// Exporter is satisfied by *usecase.ExportFramework.
type Exporter interface {
	Execute(ctx context.Context, draft domain.FrameworkDraft) (usecase.ExportOutcome, error)
}

type Deps struct {
	WorkspaceLocator ports.WorkspaceLocator
	Exporter         Exporter

	// Draft seeds the wizard (e.g. from an answers file). Zero means a fresh draft.
	Draft *domain.FrameworkDraft

	Logger *slog.Logger
	Debug  bool
}
