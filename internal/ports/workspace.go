package ports

import "github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
