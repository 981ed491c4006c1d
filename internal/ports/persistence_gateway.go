package ports

import (
	"context"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

// Submission is what the wizard hands to a persistence gateway.
type Submission struct {
	Draft    domain.FrameworkDraft
	Document string
}

// PersistenceGateway stores a finished document and returns an opaque identifier.
// Implementations do not retry.
type PersistenceGateway interface {
	Submit(ctx context.Context, s Submission) (id string, err error)
}
