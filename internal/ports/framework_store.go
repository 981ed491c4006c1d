package ports

import (
	"context"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

// FrameworkStore persists frameworks accepted by the gateway.
type FrameworkStore interface {
	Save(ctx context.Context, f domain.SavedFramework) error
	Get(ctx context.Context, id string) (domain.SavedFramework, error)
	// List returns references newest first.
	List(ctx context.Context) ([]domain.FrameworkRef, error)
}
